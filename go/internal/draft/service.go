package draft

import (
	"net/http"

	"github.com/mcdev12/pick6/go/internal/auth"
	"github.com/mcdev12/pick6/go/internal/httpx"
)

// Service exposes the draft operations over HTTP.
type Service struct {
	app *App
}

func NewService(app *App) *Service {
	return &Service{app: app}
}

// Register mounts the draft routes on mux.
func (s *Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /leagues/{league_id}/draft/start", s.handleStartDraft)
	mux.HandleFunc("GET /leagues/{league_id}/draft/status", s.handleStatus)
	mux.HandleFunc("POST /leagues/{league_id}/draft/reset", s.handleResetDraft)
	mux.HandleFunc("POST /leagues/{league_id}/picks", s.handleMakePick)
	mux.HandleFunc("GET /leagues/{league_id}/picks", s.handleListPicks)
	mux.HandleFunc("GET /leagues/{league_id}/roster", s.handleMyRoster)
	mux.HandleFunc("POST /leagues/{league_id}/members/{user_id}/picks", s.handleAssignSchool)
	mux.HandleFunc("DELETE /leagues/{league_id}/players/{user_id}", s.handleRemovePlayer)
}

func (s *Service) handleStartDraft(w http.ResponseWriter, r *http.Request) {
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

	res, err := s.app.StartDraft(r.Context(), leagueID, principal.UserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (s *Service) handleStatus(w http.ResponseWriter, r *http.Request) {
	leagueID, err := httpx.PathUUID(r, "league_id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	status, err := s.app.GetStatus(r.Context(), leagueID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, status)
}

func (s *Service) handleResetDraft(w http.ResponseWriter, r *http.Request) {
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

	res, err := s.app.ResetDraft(r.Context(), leagueID, principal.UserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

type makePickBody struct {
	SchoolID int `json:"school_id"`
}

func (s *Service) handleMakePick(w http.ResponseWriter, r *http.Request) {
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

	var body makePickBody
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	res, err := s.app.MakePick(r.Context(), MakePickRequest{
		LeagueID: leagueID,
		UserID:   principal.UserID,
		SchoolID: body.SchoolID,
	})
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, res)
}

func (s *Service) handleListPicks(w http.ResponseWriter, r *http.Request) {
	leagueID, err := httpx.PathUUID(r, "league_id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	picks, err := s.app.PicksForLeague(r.Context(), leagueID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"picks": picks})
}

func (s *Service) handleMyRoster(w http.ResponseWriter, r *http.Request) {
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

	roster, err := s.app.MyRoster(r.Context(), leagueID, principal.UserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roster)
}

func (s *Service) handleAssignSchool(w http.ResponseWriter, r *http.Request) {
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
	targetUserID, err := httpx.PathUUID(r, "user_id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var body makePickBody
	if err := httpx.DecodeJSON(r, &body); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	res, err := s.app.AssignSchool(r.Context(), AssignSchoolRequest{
		LeagueID:     leagueID,
		TargetUserID: targetUserID,
		SchoolID:     body.SchoolID,
		RequestedBy:  principal.UserID,
	})
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, res)
}

func (s *Service) handleRemovePlayer(w http.ResponseWriter, r *http.Request) {
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
	userID, err := httpx.PathUUID(r, "user_id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	res, err := s.app.RemovePlayer(r.Context(), leagueID, userID, principal.UserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}
