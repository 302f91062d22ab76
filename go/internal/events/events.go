package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event types carried over the league event subjects. The gateway fans these
// out to websocket clients verbatim.
const (
	TypeDraftStarted     = "draft_started"
	TypePickMade         = "pick_made"
	TypeDraftCompleted   = "draft_completed"
	TypeDraftReset       = "draft_reset"
	TypePlayerRemoved    = "player_removed"
	TypeMemberJoined     = "member_joined"
	TypeSettingsUpdated  = "settings_updated"
	TypeStandingsUpdated = "standings_updated"
)

// Envelope wraps every published event with routing metadata.
type Envelope struct {
	EventID   uuid.UUID       `json:"event_id"`
	EventType string          `json:"event_type"`
	LeagueID  uuid.UUID       `json:"league_id"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Subject returns the NATS subject for one league's event stream.
func Subject(prefix string, leagueID uuid.UUID) string {
	return fmt.Sprintf("%s.%s", prefix, leagueID)
}
