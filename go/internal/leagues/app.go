package leagues

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pick6/go/internal/apperrors"
	"github.com/mcdev12/pick6/go/internal/events"
	"github.com/mcdev12/pick6/go/internal/models"
	"github.com/mcdev12/pick6/go/internal/sqlutil"
)

const (
	joinCodeLength  = 8
	joinCodeRetries = 5
	// No 0/O or 1/I; codes get read aloud.
	joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	defaultRosterCap = 6
	maxRosterCap     = 12
	defaultSeason    = 2025
)

// LeaguesRepository defines what the app layer needs from the repository.
type LeaguesRepository interface {
	CreateLeague(ctx context.Context, league models.League) (*models.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	GetLeagueByJoinCode(ctx context.Context, code string) (*models.League, error)
	UpdateLeague(ctx context.Context, id uuid.UUID, name string, rosterCap int) (*models.League, error)
	UpdateLeagueStatus(ctx context.Context, id uuid.UUID, status models.LeagueStatus) error

	AddMember(ctx context.Context, member models.LeagueMember) error
	GetMember(ctx context.Context, leagueID, userID uuid.UUID) (*models.LeagueMember, error)
	ListMembers(ctx context.Context, leagueID uuid.UUID) ([]MemberInfo, error)
	UpdateTeamName(ctx context.Context, leagueID, userID uuid.UUID, teamName string) error

	ListLeaguesForUser(ctx context.Context, userID uuid.UUID) ([]Summary, error)

	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Sink receives league change events for push delivery.
type Sink interface {
	Notify(ctx context.Context, leagueID uuid.UUID, eventType string, payload any) error
}

// App handles league lifecycle and membership.
type App struct {
	repo  LeaguesRepository
	sink  Sink
	clock clockwork.Clock
}

func NewApp(repo LeaguesRepository, sink Sink, clock clockwork.Clock) *App {
	return &App{repo: repo, sink: sink, clock: clock}
}

// CreateLeague creates a league with a fresh join code and enrolls the
// creator as its first member.
func (a *App) CreateLeague(ctx context.Context, req CreateLeagueRequest, creator uuid.UUID) (*models.League, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("league name is required")
	}
	season := req.Season
	if season == 0 {
		season = defaultSeason
	}
	rosterCap := req.RosterCap
	if rosterCap == 0 {
		rosterCap = defaultRosterCap
	}
	if rosterCap < 1 || rosterCap > maxRosterCap {
		return nil, apperrors.Newf(apperrors.KindValidation, "roster cap must be between 1 and %d", maxRosterCap)
	}

	var league *models.League
	for attempt := 0; ; attempt++ {
		code, err := generateJoinCode()
		if err != nil {
			return nil, fmt.Errorf("generate join code: %w", err)
		}

		league, err = a.repo.CreateLeague(ctx, models.League{
			ID:        uuid.New(),
			Name:      name,
			Season:    season,
			JoinCode:  code,
			CreatedBy: creator,
			Status:    models.LeagueStatusPreDraft,
			RosterCap: rosterCap,
		})
		if err == nil {
			break
		}
		// Join codes collide rarely; retry with a new one.
		if apperrors.KindOf(apperrors.FromPg(err, "join code collision")) == apperrors.KindConflict && attempt < joinCodeRetries {
			log.Warn().Int("attempt", attempt+1).Msg("join code collision, regenerating")
			continue
		}
		return nil, fmt.Errorf("create league: %w", err)
	}

	teamName := strings.TrimSpace(req.TeamName)
	if teamName == "" {
		teamName = a.defaultTeamName(ctx, creator)
	}
	err := a.repo.AddMember(ctx, models.LeagueMember{
		LeagueID: league.ID,
		UserID:   creator,
		TeamName: teamName,
		JoinedAt: a.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("add creator membership: %w", err)
	}

	return league, nil
}

// JoinByCode enrolls the caller in the league the code identifies. Joining is
// only open before the draft; a second join of the same league conflicts.
func (a *App) JoinByCode(ctx context.Context, req JoinLeagueRequest, userID uuid.UUID) (*Lobby, error) {
	code := strings.ToUpper(strings.TrimSpace(req.JoinCode))
	if code == "" {
		return nil, apperrors.Validation("join code is required")
	}

	league, err := a.repo.GetLeagueByJoinCode(ctx, code)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("league with that join code")
		}
		return nil, fmt.Errorf("get league by join code: %w", err)
	}
	if league.Status != models.LeagueStatusPreDraft {
		return nil, apperrors.InvalidState("this league's draft has already started")
	}

	teamName := strings.TrimSpace(req.TeamName)
	if teamName == "" {
		teamName = a.defaultTeamName(ctx, userID)
	}
	err = a.repo.AddMember(ctx, models.LeagueMember{
		LeagueID: league.ID,
		UserID:   userID,
		TeamName: teamName,
		JoinedAt: a.clock.Now(),
	})
	if err != nil {
		return nil, apperrors.FromPg(err, "you are already a member of this league")
	}

	a.notify(ctx, league.ID, events.TypeMemberJoined, events.MemberJoinedPayload{
		LeagueID:    league.ID,
		UserID:      userID,
		DisplayName: a.displayName(ctx, userID),
		TeamName:    teamName,
	})

	return a.GetLobby(ctx, league.ID, userID)
}

// GetLobby returns the league detail with its member list.
func (a *App) GetLobby(ctx context.Context, leagueID, viewer uuid.UUID) (*Lobby, error) {
	league, err := a.repo.GetLeague(ctx, leagueID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("league")
		}
		return nil, fmt.Errorf("get league: %w", err)
	}

	members, err := a.repo.ListMembers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	lobby := &Lobby{
		League:    *league,
		Members:   members,
		IsCreator: league.CreatedBy == viewer,
	}
	for _, m := range members {
		if m.UserID == viewer {
			lobby.IsMember = true
		}
	}
	return lobby, nil
}

// ListForUser returns every league the user belongs to.
func (a *App) ListForUser(ctx context.Context, userID uuid.UUID) ([]Summary, error) {
	summaries, err := a.repo.ListLeaguesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return summaries, nil
}

// UpdateTeamName renames the caller's team in one league.
func (a *App) UpdateTeamName(ctx context.Context, leagueID, userID uuid.UUID, teamName string) error {
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return apperrors.Validation("team name is required")
	}
	if _, err := a.repo.GetMember(ctx, leagueID, userID); err != nil {
		if sqlutil.IsNoRows(err) {
			return apperrors.Forbidden("you are not a member of this league")
		}
		return fmt.Errorf("get member: %w", err)
	}
	if err := a.repo.UpdateTeamName(ctx, leagueID, userID, teamName); err != nil {
		return fmt.Errorf("update team name: %w", err)
	}
	return nil
}

// UpdateSettings changes league name and roster cap. Creator only; the cap
// is frozen once drafting begins because round math depends on it.
func (a *App) UpdateSettings(ctx context.Context, leagueID, requestedBy uuid.UUID, req UpdateSettingsRequest) (*models.League, error) {
	league, err := a.repo.GetLeague(ctx, leagueID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("league")
		}
		return nil, fmt.Errorf("get league: %w", err)
	}
	if league.CreatedBy != requestedBy {
		return nil, apperrors.Forbidden("only the league creator can change settings")
	}

	name := league.Name
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.Validation("league name is required")
		}
	}

	rosterCap := league.RosterCap
	if req.RosterCap != nil {
		if league.Status != models.LeagueStatusPreDraft {
			return nil, apperrors.InvalidState("roster cap can only change before the draft")
		}
		rosterCap = *req.RosterCap
		if rosterCap < 1 || rosterCap > maxRosterCap {
			return nil, apperrors.Newf(apperrors.KindValidation, "roster cap must be between 1 and %d", maxRosterCap)
		}
	}

	updated, err := a.repo.UpdateLeague(ctx, leagueID, name, rosterCap)
	if err != nil {
		return nil, fmt.Errorf("update league: %w", err)
	}

	a.notify(ctx, leagueID, events.TypeSettingsUpdated, events.SettingsUpdatedPayload{
		LeagueID:  leagueID,
		Name:      updated.Name,
		RosterCap: updated.RosterCap,
	})
	return updated, nil
}

// SkipDraft moves a pre_draft league straight to active, for leagues that
// assign schools outside the app. Creator only.
func (a *App) SkipDraft(ctx context.Context, leagueID, requestedBy uuid.UUID) (*models.League, error) {
	league, err := a.repo.GetLeague(ctx, leagueID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("league")
		}
		return nil, fmt.Errorf("get league: %w", err)
	}
	if league.CreatedBy != requestedBy {
		return nil, apperrors.Forbidden("only the league creator can skip the draft")
	}
	if league.Status != models.LeagueStatusPreDraft {
		return nil, apperrors.Newf(apperrors.KindInvalidState, "cannot skip draft - league status is %s", league.Status)
	}

	if err := a.repo.UpdateLeagueStatus(ctx, leagueID, models.LeagueStatusActive); err != nil {
		return nil, fmt.Errorf("update league status: %w", err)
	}
	league.Status = models.LeagueStatusActive
	return league, nil
}

func (a *App) defaultTeamName(ctx context.Context, userID uuid.UUID) string {
	return a.displayName(ctx, userID) + "'s Team"
}

func (a *App) displayName(ctx context.Context, userID uuid.UUID) string {
	user, err := a.repo.GetUser(ctx, userID)
	if err != nil {
		return "Player"
	}
	return user.DisplayName
}

func (a *App) notify(ctx context.Context, leagueID uuid.UUID, eventType string, payload any) {
	if a.sink == nil {
		return
	}
	if err := a.sink.Notify(ctx, leagueID, eventType, payload); err != nil {
		log.Error().
			Err(err).
			Str("league_id", leagueID.String()).
			Str("event_type", eventType).
			Msg("failed to publish league event")
	}
}

func generateJoinCode() (string, error) {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	code := make([]byte, joinCodeLength)
	for i, b := range buf {
		code[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(code), nil
}
