package models

import (
	"time"

	"github.com/google/uuid"
)

// DraftState tracks whose turn it is in a league's draft. One row per league,
// created at draft start and deleted by a draft reset.
//
// Invariant: while the league is drafting, CurrentPickOverall equals the
// number of committed picks plus one.
type DraftState struct {
	LeagueID           uuid.UUID  `json:"league_id"`
	CurrentPickOverall int        `json:"current_pick_overall"`
	CurrentUserID      *uuid.UUID `json:"current_user_id,omitempty"` // nil once complete
	TotalPicks         int        `json:"total_picks"`               // member count x roster cap
	StartedAt          time.Time  `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

// Complete reports whether the draft has finished.
func (d *DraftState) Complete() bool {
	return d.CompletedAt != nil
}
