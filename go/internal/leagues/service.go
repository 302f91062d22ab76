package leagues

import (
	"net/http"

	"github.com/mcdev12/pick6/go/internal/auth"
	"github.com/mcdev12/pick6/go/internal/httpx"
)

// Service exposes league operations over HTTP.
type Service struct {
	app *App
}

func NewService(app *App) *Service {
	return &Service{app: app}
}

func (s *Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /leagues", s.handleCreate)
	mux.HandleFunc("POST /leagues/join", s.handleJoin)
	mux.HandleFunc("GET /leagues", s.handleList)
	mux.HandleFunc("GET /leagues/{league_id}", s.handleGet)
	mux.HandleFunc("PATCH /leagues/{league_id}/settings", s.handleUpdateSettings)
	mux.HandleFunc("PATCH /leagues/{league_id}/team", s.handleUpdateTeamName)
	mux.HandleFunc("POST /leagues/{league_id}/draft/skip", s.handleSkipDraft)
}

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, nil)
		return
	}

	var req CreateLeagueRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	league, err := s.app.CreateLeague(r.Context(), req, principal.UserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, league)
}

func (s *Service) handleJoin(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, nil)
		return
	}

	var req JoinLeagueRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	lobby, err := s.app.JoinByCode(r.Context(), req, principal.UserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lobby)
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, nil)
		return
	}

	summaries, err := s.app.ListForUser(r.Context(), principal.UserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"leagues": summaries})
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	principal, _ := auth.PrincipalFromContext(r.Context())
	leagueID, err := httpx.PathUUID(r, "league_id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	lobby, err := s.app.GetLobby(r.Context(), leagueID, principal.UserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lobby)
}

func (s *Service) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, nil)
		return
	}
	leagueID, err := httpx.PathUUID(r, "league_id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var req UpdateSettingsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	league, err := s.app.UpdateSettings(r.Context(), leagueID, principal.UserID, req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, league)
}

func (s *Service) handleUpdateTeamName(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, nil)
		return
	}
	leagueID, err := httpx.PathUUID(r, "league_id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var req UpdateTeamNameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	if err := s.app.UpdateTeamName(r.Context(), leagueID, principal.UserID, req.TeamName); err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"team_name": req.TeamName})
}

func (s *Service) handleSkipDraft(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, nil)
		return
	}
	leagueID, err := httpx.PathUUID(r, "league_id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	league, err := s.app.SkipDraft(r.Context(), leagueID, principal.UserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, league)
}
