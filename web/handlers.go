package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/unrolled/render"

	"github.com/DCal661/league-of-misfits/controller"
	"github.com/DCal661/league-of-misfits/model"
)

// currentSnapshot returns the published snapshot, building one first if
// no refresh has completed yet. A nil return means the error page was
// already rendered.
func currentSnapshot(ctrl controller.C, render *render.Render, w http.ResponseWriter, r *http.Request) *model.Snapshot {
	snap := ctrl.Snapshot()
	if snap != nil {
		return snap
	}

	snap, err := ctrl.Refresh(r.Context())
	if err != nil {
		log.Error("refresh failed", "error", err)
		render.HTML(w, http.StatusBadGateway, "error", err.Error())
		return nil
	}
	return snap
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := currentSnapshot(ctrl, render, w, r)
		if snap == nil {
			return
		}
		data := map[string]any{
			"tab":  "standings",
			"snap": snap,
		}
		render.HTML(w, http.StatusOK, "standings", data)
	}
}

func matchupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := currentSnapshot(ctrl, render, w, r)
		if snap == nil {
			return
		}

		week := snap.State.Week
		matchups := snap.Matchups

		// An explicit week selection fetches that week on demand, the
		// snapshot only carries the current week's pairs.
		if q := r.URL.Query().Get("week"); q != "" {
			parsed, err := strconv.Atoi(q)
			if err != nil || parsed < 1 {
				render.HTML(w, http.StatusBadRequest, "error", fmt.Sprintf("invalid week: %s", q))
				return
			}
			week = parsed
			matchups, err = ctrl.MatchupsForWeek(r.Context(), week)
			if err != nil {
				log.Error("matchup fetch failed", "week", week, "error", err)
				render.HTML(w, http.StatusBadGateway, "error", err.Error())
				return
			}
		}

		weeks := make([]int, 0, snap.State.Week)
		for i := 1; i <= snap.State.Week; i++ {
			weeks = append(weeks, i)
		}

		data := map[string]any{
			"tab":      "matchups",
			"snap":     snap,
			"week":     week,
			"weeks":    weeks,
			"matchups": matchups,
		}
		render.HTML(w, http.StatusOK, "matchups", data)
	}
}

func trendsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := currentSnapshot(ctrl, render, w, r)
		if snap == nil {
			return
		}
		data := map[string]any{
			"tab":  "trends",
			"snap": snap,
		}
		render.HTML(w, http.StatusOK, "trends", data)
	}
}

func awardsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := currentSnapshot(ctrl, render, w, r)
		if snap == nil {
			return
		}
		data := map[string]any{
			"tab":  "awards",
			"snap": snap,
		}
		render.HTML(w, http.StatusOK, "awards", data)
	}
}

func refreshHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := ctrl.Refresh(r.Context()); err != nil {
			log.Error("refresh failed", "error", err)
			render.HTML(w, http.StatusBadGateway, "error", err.Error())
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// chatFallback is the single in-conversation message a failed
// completion call turns into. The conversation keeps going.
const chatFallback = "I'm having trouble connecting right now. Give me a minute and try again."

func chatHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []model.ChatMessage `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]any{"error": fmt.Sprintf("error parsing chat request: %v", err)})
			return
		}
		if len(req.Messages) == 0 {
			render.JSON(w, http.StatusBadRequest, map[string]any{"error": "messages must be provided"})
			return
		}

		reply, err := ctrl.ChatReply(r.Context(), req.Messages)
		if err != nil {
			log.Error("chat reply failed", "error", err)
			reply = chatFallback
		}

		render.JSON(w, http.StatusOK, model.ChatMessage{
			Role:    model.ChatRoleAssistant,
			Content: reply,
		})
	}
}

func apiStandingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := ctrl.Snapshot()
		if snap == nil {
			var err error
			snap, err = ctrl.Refresh(r.Context())
			if err != nil {
				render.JSON(w, http.StatusBadGateway, map[string]any{"error": err.Error()})
				return
			}
		}
		render.JSON(w, http.StatusOK, snap.Teams)
	}
}

func apiTrendHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := ctrl.Snapshot()
		if snap == nil {
			var err error
			snap, err = ctrl.Refresh(r.Context())
			if err != nil {
				render.JSON(w, http.StatusBadGateway, map[string]any{"error": err.Error()})
				return
			}
		}
		render.JSON(w, http.StatusOK, snap.Trend)
	}
}
