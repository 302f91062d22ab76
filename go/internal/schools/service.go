package schools

import (
	"net/http"

	"github.com/mcdev12/pick6/go/internal/httpx"
)

// Service exposes the school catalog over HTTP.
type Service struct {
	app *App
}

func NewService(app *App) *Service {
	return &Service{app: app}
}

func (s *Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /schools", s.handleList)
	mux.HandleFunc("GET /schools/{school_id}", s.handleGet)
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	schools, err := s.app.List(r.Context(), r.URL.Query().Get("conference"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"schools": schools})
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt(r, "school_id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	school, err := s.app.Get(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, school)
}
