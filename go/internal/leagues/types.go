package leagues

import (
	"time"

	"github.com/google/uuid"

	"github.com/mcdev12/pick6/go/internal/models"
)

// CreateLeagueRequest creates a league and enrolls the creator.
type CreateLeagueRequest struct {
	Name      string `json:"name"`
	Season    int    `json:"season"`
	RosterCap int    `json:"roster_cap"`
	TeamName  string `json:"team_name"`
}

// JoinLeagueRequest joins an existing league by its share code.
type JoinLeagueRequest struct {
	JoinCode string `json:"join_code"`
	TeamName string `json:"team_name"`
}

// UpdateSettingsRequest changes league settings. Nil fields are untouched.
type UpdateSettingsRequest struct {
	Name      *string `json:"name,omitempty"`
	RosterCap *int    `json:"roster_cap,omitempty"`
}

// UpdateTeamNameRequest renames the caller's own team.
type UpdateTeamNameRequest struct {
	TeamName string `json:"team_name"`
}

// MemberInfo is one member row in a lobby response.
type MemberInfo struct {
	UserID        uuid.UUID `json:"user_id"`
	DisplayName   string    `json:"display_name"`
	TeamName      string    `json:"team_name"`
	DraftPosition *int      `json:"draft_position,omitempty"`
	JoinedAt      time.Time `json:"joined_at"`
}

// Lobby is the league detail view.
type Lobby struct {
	League    models.League `json:"league"`
	Members   []MemberInfo  `json:"members"`
	IsCreator bool          `json:"is_creator"`
	IsMember  bool          `json:"is_member"`
}

// Summary is one row in a user's league list.
type Summary struct {
	League      models.League `json:"league"`
	TeamName    string        `json:"team_name"`
	MemberCount int           `json:"member_count"`
}
