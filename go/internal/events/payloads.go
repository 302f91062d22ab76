package events

import (
	"time"

	"github.com/google/uuid"
)

// Event payload types shared between the domain apps and the gateway.

// DraftStartedPayload is the payload for a draft_started event
type DraftStartedPayload struct {
	LeagueID      uuid.UUID `json:"league_id"`
	CurrentUserID uuid.UUID `json:"current_user_id"`
	TotalPicks    int       `json:"total_picks"`
	StartedAt     time.Time `json:"started_at"`
}

// PickMadePayload is the payload for a pick_made event
type PickMadePayload struct {
	LeagueID         uuid.UUID  `json:"league_id"`
	UserID           uuid.UUID  `json:"user_id"`
	SchoolID         int        `json:"school_id"`
	SchoolName       string     `json:"school_name"`
	DraftRound       int        `json:"draft_round"`
	DraftPickOverall int        `json:"draft_pick_overall"`
	NextUserID       *uuid.UUID `json:"next_user_id,omitempty"`
	LeagueStatus     string     `json:"league_status"`
}

// DraftCompletedPayload is the payload for a draft_completed event
type DraftCompletedPayload struct {
	LeagueID   uuid.UUID `json:"league_id"`
	TotalPicks int       `json:"total_picks"`
}

// DraftResetPayload is the payload for a draft_reset event
type DraftResetPayload struct {
	LeagueID     uuid.UUID `json:"league_id"`
	PicksRemoved int       `json:"picks_removed"`
}

// PlayerRemovedPayload is the payload for a player_removed event
type PlayerRemovedPayload struct {
	LeagueID      uuid.UUID  `json:"league_id"`
	UserID        uuid.UUID  `json:"user_id"`
	CurrentUserID *uuid.UUID `json:"current_user_id,omitempty"`
	LeagueStatus  string     `json:"league_status"`
}

// MemberJoinedPayload is the payload for a member_joined event
type MemberJoinedPayload struct {
	LeagueID    uuid.UUID `json:"league_id"`
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	TeamName    string    `json:"team_name"`
}

// SettingsUpdatedPayload is the payload for a settings_updated event
type SettingsUpdatedPayload struct {
	LeagueID  uuid.UUID `json:"league_id"`
	Name      string    `json:"name"`
	RosterCap int       `json:"roster_cap"`
}

// StandingsUpdatedPayload is the payload for a standings_updated event
type StandingsUpdatedPayload struct {
	LeagueID uuid.UUID `json:"league_id"`
	Week     int       `json:"week"`
}
