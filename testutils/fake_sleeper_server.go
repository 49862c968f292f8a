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

//go:embed sleeperdata
var sleeperdata embed.FS

// SleeperLeagueID is the league all of the fixture data belongs to.
const SleeperLeagueID = "99887766554433221"

type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/state/nfl", stateHandler)

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/users", leagueUsersHandler)
			r.Get("/rosters", leagueRostersHandler)
			r.Get("/matchups/{week}", leagueMatchupsHandler)
		})
	})

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func stateHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "state.json")
}

func leagueUsersHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") == SleeperLeagueID {
		serveFile(w, "users.json")
	} else {
		emptyList(w)
	}
}

func leagueRostersHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") == SleeperLeagueID {
		serveFile(w, "rosters.json")
	} else {
		emptyList(w)
	}
}

func leagueMatchupsHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") != SleeperLeagueID {
		emptyList(w)
		return
	}

	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		emptyList(w)
		return
	}

	switch {
	case week == 7:
		serveFile(w, "matchups_7.json")
	case week >= 1 && week < 7:
		// Every earlier week shares one set of results, which keeps the
		// fixture count down without starving the trend of data.
		serveFile(w, "matchups_early.json")
	default:
		emptyList(w)
	}
}

func emptyList(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("[]"))
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Error("error reading sleeper fixture", "name", name, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
