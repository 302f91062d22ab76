package models

import (
	"time"

	"github.com/google/uuid"
)

// LeagueStatus is the coarse state machine gating which operations are legal.
type LeagueStatus string

const (
	LeagueStatusPreDraft  LeagueStatus = "pre_draft"
	LeagueStatusDrafting  LeagueStatus = "drafting"
	LeagueStatusActive    LeagueStatus = "active"
	LeagueStatusCompleted LeagueStatus = "completed"
)

// League represents a pick6 league for one college football season.
type League struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Season    int          `json:"season"`
	JoinCode  string       `json:"join_code"`
	CreatedBy uuid.UUID    `json:"created_by"`
	Status    LeagueStatus `json:"status"`
	RosterCap int          `json:"roster_cap"` // max schools per member
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
