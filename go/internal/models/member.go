package models

import (
	"time"

	"github.com/google/uuid"
)

// LeagueMember is one user's membership in one league. A user has at most
// one membership per league.
type LeagueMember struct {
	LeagueID      uuid.UUID `json:"league_id"`
	UserID        uuid.UUID `json:"user_id"`
	TeamName      string    `json:"team_name"`
	DraftPosition *int      `json:"draft_position,omitempty"` // nil until draft start
	JoinedAt      time.Time `json:"joined_at"`
}
