package users

import (
	"net/http"

	"github.com/mcdev12/pick6/go/internal/auth"
	"github.com/mcdev12/pick6/go/internal/httpx"
)

// Service exposes auth and profile endpoints. Login is the only route the
// server mounts outside the auth middleware.
type Service struct {
	app *App
}

func NewService(app *App) *Service {
	return &Service{app: app}
}

// RegisterPublic mounts the unauthenticated routes.
func (s *Service) RegisterPublic(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/login", s.handleLogin)
}

// Register mounts the authenticated routes.
func (s *Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /me", s.handleMe)
	mux.HandleFunc("PATCH /me", s.handleUpdateMe)
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	res, err := s.app.Login(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (s *Service) handleMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, nil)
		return
	}

	user, err := s.app.GetUser(r.Context(), principal.UserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}

func (s *Service) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, nil)
		return
	}

	var req UpdateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	user, err := s.app.UpdateDisplayName(r.Context(), principal.UserID, req)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}
