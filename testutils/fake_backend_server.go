package testutils

import (
	"embed"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
)

//go:embed backenddata
var backenddata embed.FS

type FakeBackendServer struct {
	s *httptest.Server
}

func NewFakeBackendServer() *FakeBackendServer {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", backendStateHandler)
		r.Get("/standings", backendStandingsHandler)
		r.Get("/matchups/{week}", backendMatchupsHandler)
		r.Get("/awards/{week}", backendAwardsHandler)
	})

	return &FakeBackendServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeBackendServer) Close() {
	f.s.Close()
}

func (f *FakeBackendServer) URL() string {
	return f.s.URL
}

func backendStateHandler(w http.ResponseWriter, r *http.Request) {
	serveBackendFile(w, "state.json")
}

func backendStandingsHandler(w http.ResponseWriter, r *http.Request) {
	serveBackendFile(w, "standings.json")
}

func backendMatchupsHandler(w http.ResponseWriter, r *http.Request) {
	if week, err := strconv.Atoi(chi.URLParam(r, "week")); err == nil && week >= 1 && week <= 3 {
		serveBackendFile(w, "matchups.json")
	} else {
		emptyList(w)
	}
}

func backendAwardsHandler(w http.ResponseWriter, r *http.Request) {
	if week, err := strconv.Atoi(chi.URLParam(r, "week")); err == nil && week >= 2 && week <= 3 {
		serveBackendFile(w, "awards.json")
	} else {
		// Week 1 deliberately has no awards to exercise omission.
		emptyList(w)
	}
}

func serveBackendFile(w http.ResponseWriter, name string) {
	b, err := backenddata.ReadFile(fmt.Sprintf("backenddata/%s", name))
	if err != nil {
		log.Error("error reading backend fixture", "name", name, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
