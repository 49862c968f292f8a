package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/DCal661/league-of-misfits/controller"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped. Refreshes fan out over every week of
	// the season, so the budget is generous.
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", standingsHandler(ctrl, render))
	r.Get("/matchups", matchupsHandler(ctrl, render))
	r.Get("/trends", trendsHandler(ctrl, render))
	r.Get("/awards", awardsHandler(ctrl, render))

	r.Post("/refresh", refreshHandler(ctrl, render))
	r.Post("/chat", chatHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		r.Get("/standings", apiStandingsHandler(ctrl, render))
		r.Get("/trend", apiTrendHandler(ctrl, render))
	})

	return r
}
