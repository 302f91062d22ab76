package games

import (
	"net/http"

	"github.com/mcdev12/pick6/go/internal/httpx"
)

// Service exposes the weekly results view over HTTP.
type Service struct {
	app *App
}

func NewService(app *App) *Service {
	return &Service{app: app}
}

func (s *Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /leagues/{league_id}/games/{week}", s.handleWeekView)
}

func (s *Service) handleWeekView(w http.ResponseWriter, r *http.Request) {
	leagueID, err := httpx.PathUUID(r, "league_id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	week, err := httpx.PathInt(r, "week")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	view, err := s.app.WeekView(r.Context(), leagueID, week)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}
