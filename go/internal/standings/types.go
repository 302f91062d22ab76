package standings

import (
	"time"

	"github.com/google/uuid"
)

// WeekCode is the per-week result code shown on the standings grid.
type WeekCode string

const (
	CodeWin        WeekCode = "W"
	CodeLoss       WeekCode = "L"
	CodeTie        WeekCode = "T"
	CodeBye        WeekCode = "BYE"
	CodeScheduled  WeekCode = "S"
	CodeInProgress WeekCode = "IP"
)

// WeekResult is one school's outcome for one week.
type WeekResult struct {
	Week           int      `json:"week"`
	Code           WeekCode `json:"code"`
	Opponent       string   `json:"opponent,omitempty"`
	SchoolPoints   *int     `json:"school_points,omitempty"`
	OpponentPoints *int     `json:"opponent_points,omitempty"`
}

// SchoolLine is one drafted school's season record within a member row.
type SchoolLine struct {
	SchoolID   int          `json:"school_id"`
	Name       string       `json:"name"`
	DraftRound int          `json:"draft_round"`
	Wins       int          `json:"wins"`
	Losses     int          `json:"losses"`
	Ties       int          `json:"ties"`
	Weekly     []WeekResult `json:"weekly"`
}

// MemberStanding is one member's aggregated row.
type MemberStanding struct {
	UserID      uuid.UUID    `json:"user_id"`
	DisplayName string       `json:"display_name"`
	TeamName    string       `json:"team_name"`
	Rank        int          `json:"rank"`
	TotalWins   int          `json:"total_wins"`
	TotalLosses int          `json:"total_losses"`
	TotalTies   int          `json:"total_ties"`
	GamesPlayed int          `json:"games_played"`
	Schools     []SchoolLine `json:"schools"`
}

// LeagueStandings is the full standings response for one league.
type LeagueStandings struct {
	LeagueID   uuid.UUID        `json:"league_id"`
	Season     int              `json:"season"`
	Week       int              `json:"week"`
	Degraded   bool             `json:"degraded"`
	ComputedAt time.Time        `json:"computed_at"`
	Standings  []MemberStanding `json:"standings"`
}

// RosterRow is one pick joined with its member and school, the unit the
// aggregator folds over.
type RosterRow struct {
	UserID      uuid.UUID
	DisplayName string
	TeamName    string
	SchoolID    int
	SchoolName  string
	DraftRound  int
}
