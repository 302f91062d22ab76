package gateway

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pick6/go/internal/apperrors"
	"github.com/mcdev12/pick6/go/internal/auth"
	"github.com/mcdev12/pick6/go/internal/httpx"
	"github.com/mcdev12/pick6/go/internal/models"
	"github.com/mcdev12/pick6/go/internal/sqlutil"
)

// MembershipChecker verifies that a user belongs to a league before the
// upgrade is allowed.
type MembershipChecker interface {
	GetMember(ctx context.Context, leagueID, userID uuid.UUID) (*models.LeagueMember, error)
}

// Handler serves WebSocket upgrade requests for league event streams.
type Handler struct {
	manager *ConnectionManager
	members MembershipChecker
}

// NewHandler creates a new WebSocket handler.
func NewHandler(manager *ConnectionManager, members MembershipChecker) *Handler {
	return &Handler{
		manager: manager,
		members: members,
	}
}

// Register mounts the gateway routes on mux. The auth middleware accepts the
// token as a query parameter, so browser WebSocket clients can authenticate.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /ws/leagues/{league_id}", h.handleUpgrade)
	mux.HandleFunc("GET /ws/stats", h.handleStats)
}

func (h *Handler) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, r, apperrors.Forbidden("authentication required"))
		return
	}

	leagueID, err := httpx.PathUUID(r, "league_id")
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	if _, err := h.members.GetMember(r.Context(), leagueID, principal.UserID); err != nil {
		if sqlutil.IsNoRows(err) {
			httpx.WriteError(w, r, apperrors.Forbidden("not a member of this league"))
			return
		}
		httpx.WriteError(w, r, err)
		return
	}

	if err := h.manager.UpgradeConnection(w, r, principal.UserID, leagueID); err != nil {
		// The upgrader has already written its own error response.
		log.Error().
			Err(err).
			Str("league_id", leagueID.String()).
			Str("user_id", principal.UserID.String()).
			Msg("WebSocket upgrade failed")
	}
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.manager.Stats())
}
