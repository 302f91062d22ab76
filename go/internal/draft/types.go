package draft

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/pick6/go/internal/models"
)

// MakePickRequest represents a user's attempt to draft a school.
type MakePickRequest struct {
	LeagueID uuid.UUID `json:"league_id"`
	UserID   uuid.UUID `json:"user_id"`
	SchoolID int       `json:"school_id"`
}

// MakePickResult is everything the caller needs to render the new board
// state without a follow-up query.
type MakePickResult struct {
	Pick          models.Pick         `json:"pick"`
	School        models.School       `json:"school"`
	LeagueStatus  models.LeagueStatus `json:"league_status"`
	DraftComplete bool                `json:"draft_complete"`
	NextUserID    *uuid.UUID          `json:"next_user_id,omitempty"`
}

// DraftOrderEntry is one member in the randomized draft order.
type DraftOrderEntry struct {
	DraftPosition int       `json:"draft_position"`
	UserID        uuid.UUID `json:"user_id"`
	DisplayName   string    `json:"display_name"`
	TeamName      string    `json:"team_name"`
}

// StartDraftResult is returned when a draft begins.
type StartDraftResult struct {
	DraftOrder    []DraftOrderEntry   `json:"draft_order"`
	CurrentUserID uuid.UUID           `json:"current_user_id"`
	TotalPicks    int                 `json:"total_picks"`
	LeagueStatus  models.LeagueStatus `json:"league_status"`
	StartedAt     time.Time           `json:"started_at"`
}

// StatusPhase is the coarse draft phase reported to clients.
type StatusPhase string

const (
	PhaseWaiting  StatusPhase = "waiting"
	PhaseActive   StatusPhase = "active"
	PhaseComplete StatusPhase = "complete"
)

// Status is the idempotent read of the current draft state. Repeated calls
// without an intervening pick return identical turn data.
type Status struct {
	Phase              StatusPhase         `json:"phase"`
	LeagueStatus       models.LeagueStatus `json:"league_status"`
	CurrentPickOverall *int                `json:"current_pick_overall,omitempty"`
	CurrentRound       int                 `json:"current_round"`
	CurrentUserID      *uuid.UUID          `json:"current_user_id,omitempty"`
	CurrentUserName    string              `json:"current_user_name,omitempty"`
	TotalPicks         int                 `json:"total_picks"`
	PicksMade          int                 `json:"picks_made"`
	PicksRemaining     int                 `json:"picks_remaining"`
	TotalMembers       int                 `json:"total_members"`
	DraftOrder         []DraftOrderEntry   `json:"draft_order"`
}

// AssignSchoolRequest is a creator handing a school to a member outside the
// live draft flow.
type AssignSchoolRequest struct {
	LeagueID     uuid.UUID `json:"league_id"`
	TargetUserID uuid.UUID `json:"user_id"`
	SchoolID     int       `json:"school_id"`
	RequestedBy  uuid.UUID `json:"-"`
}

// AssignSchoolResult is the committed manual assignment.
type AssignSchoolResult struct {
	Pick   models.Pick   `json:"pick"`
	School models.School `json:"school"`
}

// RosterView is one member's slice of the league ledger.
type RosterView struct {
	LeagueID  uuid.UUID     `json:"league_id"`
	UserID    uuid.UUID     `json:"user_id"`
	RosterCap int           `json:"roster_cap"`
	Picks     []models.Pick `json:"picks"`
	SlotsOpen int           `json:"slots_open"`
}

// RemovePlayerResult reports the turn state after a member is removed.
type RemovePlayerResult struct {
	RemovedUserID uuid.UUID           `json:"removed_user_id"`
	LeagueStatus  models.LeagueStatus `json:"league_status"`
	CurrentUserID *uuid.UUID          `json:"current_user_id,omitempty"`
	TotalPicks    int                 `json:"total_picks"`
	PicksRemoved  int                 `json:"picks_removed"`
}

// ResetDraftResult reports a cleared draft.
type ResetDraftResult struct {
	LeagueStatus models.LeagueStatus `json:"league_status"`
	PicksRemoved int                 `json:"picks_removed"`
}
