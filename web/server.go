package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/unrolled/render"

	"github.com/DCal661/league-of-misfits/controller"
	"github.com/DCal661/league-of-misfits/model"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

func NewServer(port int, ctrl controller.C) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Info("web server is listening", "addr", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"points": pointsFormatter,
				"record": recordFormatter,
				"streak": streakFormatter,
			},
		},
	})
}

// Display truncates to one decimal place. Truncates, not rounds: the
// platform's own UI shows 101.29 as 101.2, and ranking always compares
// the full-precision value anyway.
func pointsFormatter(points float64) string {
	return fmt.Sprintf("%.1f", math.Trunc(points*10)/10)
}

func recordFormatter(wins, losses int) string {
	return fmt.Sprintf("%d-%d", wins, losses)
}

func streakFormatter(token string) string {
	if token == "" {
		return "-"
	}
	return model.FormatStreak(token)
}
