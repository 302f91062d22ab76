package models

import "time"

// Game is one scheduled or completed college football game as reported by
// the external results feed. Read-only to the core; only flipped to
// completed by the feed loader.
type Game struct {
	ID         int        `json:"id"`
	Season     int        `json:"season"`
	Week       int        `json:"week"`
	SeasonType string     `json:"season_type"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	Completed  bool       `json:"completed"`
	HomeID     int        `json:"home_id"`
	HomeTeam   string     `json:"home_team"`
	HomePoints int        `json:"home_points"`
	AwayID     int        `json:"away_id"`
	AwayTeam   string     `json:"away_team"`
	AwayPoints int        `json:"away_points"`
}

// Winner returns the winning school id for a completed game, or 0 for a tie.
func (g *Game) Winner() int {
	if !g.Completed {
		return 0
	}
	switch {
	case g.HomePoints > g.AwayPoints:
		return g.HomeID
	case g.AwayPoints > g.HomePoints:
		return g.AwayID
	default:
		return 0
	}
}
