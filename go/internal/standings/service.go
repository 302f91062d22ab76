package standings

import (
	"net/http"
	"strconv"

	"github.com/mcdev12/pick6/go/internal/apperrors"
	"github.com/mcdev12/pick6/go/internal/httpx"
)

// Service exposes standings over HTTP.
type Service struct {
	app *App
}

func NewService(app *App) *Service {
	return &Service{app: app}
}

func (s *Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /leagues/{league_id}/standings", s.handleStandings)
}

func (s *Service) handleStandings(w http.ResponseWriter, r *http.Request) {
	leagueID, err := httpx.PathUUID(r, "league_id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	week := 0
	if raw := r.URL.Query().Get("week"); raw != "" {
		week, err = strconv.Atoi(raw)
		if err != nil || week < 1 {
			httpx.WriteError(w, r, apperrors.Validation("week must be a positive integer"))
			return
		}
	}

	standings, err := s.app.Compute(r.Context(), leagueID, week)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, standings)
}
