package games

import (
	"github.com/mcdev12/pick6/go/internal/models"
)

// SyncResult summarizes one feed ingestion run.
type SyncResult struct {
	Season  int `json:"season"`
	Week    int `json:"week"`
	Fetched int `json:"fetched"`
	Upserts int `json:"upserts"`
	Skipped int `json:"skipped"`
}

// WeekView is the weekly results view for one league: the games involving
// any of the league's drafted schools.
type WeekView struct {
	Season int           `json:"season"`
	Week   int           `json:"week"`
	Games  []models.Game `json:"games"`
}
