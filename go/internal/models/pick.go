package models

import (
	"time"

	"github.com/google/uuid"
)

// Pick is one durable assignment of a school to a member within a league.
// A school can be drafted at most once per league; the store enforces that
// with a unique constraint on (league_id, school_id).
type Pick struct {
	LeagueID         uuid.UUID `json:"league_id"`
	UserID           uuid.UUID `json:"user_id"`
	SchoolID         int       `json:"school_id"`
	DraftRound       int       `json:"draft_round"`
	DraftPickOverall int       `json:"draft_pick_overall"`
	DraftedAt        time.Time `json:"drafted_at"`
}
