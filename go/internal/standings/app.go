package standings

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/pick6/go/internal/apperrors"
	"github.com/mcdev12/pick6/go/internal/models"
	"github.com/mcdev12/pick6/go/internal/sqlutil"
)

// StandingsRepository defines what the app layer needs from the repository.
type StandingsRepository interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	RosterRows(ctx context.Context, leagueID uuid.UUID) ([]RosterRow, error)
	GamesForSchools(ctx context.Context, season, throughWeek int, schoolIDs []int) ([]models.Game, error)
	CurrentWeek(ctx context.Context, season int) (int, error)
	LeagueIDsByStatus(ctx context.Context, status models.LeagueStatus) ([]uuid.UUID, error)
}

// App computes league standings. It issues two bounded queries per request
// (the roster join and one bulk games fetch) and folds everything in memory,
// so cost scales with roster size and weeks elapsed, not league count.
type App struct {
	repo  StandingsRepository
	clock clockwork.Clock
}

func NewApp(repo StandingsRepository, clock clockwork.Clock) *App {
	return &App{repo: repo, clock: clock}
}

// Compute builds the standings for one league through the given week. Week 0
// means "through the latest week the feed knows about". A league whose season
// has no game data yet gets a zeroed table, not an error.
func (a *App) Compute(ctx context.Context, leagueID uuid.UUID, week int) (*LeagueStandings, error) {
	league, err := a.repo.GetLeague(ctx, leagueID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("league")
		}
		return nil, fmt.Errorf("get league: %w", err)
	}

	rows, err := a.repo.RosterRows(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("roster rows: %w", err)
	}

	if week <= 0 {
		week, err = a.repo.CurrentWeek(ctx, league.Season)
		if err != nil {
			return nil, fmt.Errorf("current week: %w", err)
		}
	}

	out := &LeagueStandings{
		LeagueID:   leagueID,
		Season:     league.Season,
		Week:       week,
		ComputedAt: a.clock.Now(),
	}

	schoolIDs := make([]int, 0, len(rows))
	seen := make(map[int]bool)
	for _, r := range rows {
		if !seen[r.SchoolID] {
			seen[r.SchoolID] = true
			schoolIDs = append(schoolIDs, r.SchoolID)
		}
	}

	var games []models.Game
	if week > 0 && len(schoolIDs) > 0 {
		games, err = a.repo.GamesForSchools(ctx, league.Season, week, schoolIDs)
		if err != nil {
			return nil, fmt.Errorf("games for schools: %w", err)
		}
	}
	if len(games) == 0 {
		out.Degraded = true
	}

	// Index games by school and week; one game serves both participants.
	type key struct {
		schoolID int
		week     int
	}
	byWeek := make(map[key]*models.Game, len(games)*2)
	for i := range games {
		g := &games[i]
		byWeek[key{g.HomeID, g.Week}] = g
		byWeek[key{g.AwayID, g.Week}] = g
	}

	byMember := make(map[uuid.UUID]*MemberStanding)
	var order []uuid.UUID
	for _, r := range rows {
		ms, ok := byMember[r.UserID]
		if !ok {
			ms = &MemberStanding{
				UserID:      r.UserID,
				DisplayName: r.DisplayName,
				TeamName:    r.TeamName,
			}
			byMember[r.UserID] = ms
			order = append(order, r.UserID)
		}

		line := SchoolLine{
			SchoolID:   r.SchoolID,
			Name:       r.SchoolName,
			DraftRound: r.DraftRound,
		}
		for w := 1; w <= week; w++ {
			res := a.resolveWeek(byWeek[key{r.SchoolID, w}], r.SchoolID, w)
			switch res.Code {
			case CodeWin:
				line.Wins++
			case CodeLoss:
				line.Losses++
			case CodeTie:
				line.Ties++
			}
			line.Weekly = append(line.Weekly, res)
		}

		ms.TotalWins += line.Wins
		ms.TotalLosses += line.Losses
		ms.TotalTies += line.Ties
		ms.GamesPlayed += line.Wins + line.Losses + line.Ties
		ms.Schools = append(ms.Schools, line)
	}

	for _, id := range order {
		out.Standings = append(out.Standings, *byMember[id])
	}
	sort.SliceStable(out.Standings, func(i, j int) bool {
		si, sj := out.Standings[i], out.Standings[j]
		if si.TotalWins != sj.TotalWins {
			return si.TotalWins > sj.TotalWins
		}
		return strings.ToLower(si.DisplayName) < strings.ToLower(sj.DisplayName)
	})
	for i := range out.Standings {
		out.Standings[i].Rank = i + 1
	}

	return out, nil
}

// resolveWeek maps one school-week onto a result code. No game is a bye; a
// game that has kicked off but not finished is in progress.
func (a *App) resolveWeek(g *models.Game, schoolID, week int) WeekResult {
	if g == nil {
		return WeekResult{Week: week, Code: CodeBye}
	}

	opponent := g.AwayTeam
	schoolPoints, oppPoints := g.HomePoints, g.AwayPoints
	if g.AwayID == schoolID {
		opponent = g.HomeTeam
		schoolPoints, oppPoints = g.AwayPoints, g.HomePoints
	}

	res := WeekResult{Week: week, Opponent: opponent}
	if !g.Completed {
		res.Code = CodeScheduled
		if g.StartDate != nil && !g.StartDate.After(a.clock.Now()) {
			res.Code = CodeInProgress
		}
		return res
	}

	res.SchoolPoints = &schoolPoints
	res.OpponentPoints = &oppPoints
	switch winner := g.Winner(); {
	case winner == schoolID:
		res.Code = CodeWin
	case winner == 0:
		res.Code = CodeTie
	default:
		res.Code = CodeLoss
	}
	return res
}
