package games

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pick6/go/clients/cfbdata_client"
	"github.com/mcdev12/pick6/go/internal/apperrors"
	"github.com/mcdev12/pick6/go/internal/models"
	"github.com/mcdev12/pick6/go/internal/sqlutil"
)

// Feed is the external results provider.
type Feed interface {
	FetchGames(ctx context.Context, season, week int) ([]cfbdata_client.GameResponse, error)
}

// GamesRepository defines what the app layer needs from the repository.
type GamesRepository interface {
	UpsertGames(ctx context.Context, games []models.Game) (upserts, skipped int, err error)
	GamesForLeagueWeek(ctx context.Context, leagueID uuid.UUID, season, week int) ([]models.Game, error)
	GetLeagueSeason(ctx context.Context, leagueID uuid.UUID) (int, error)
	CurrentWeek(ctx context.Context, season int) (int, error)
}

// App ingests feed games and serves weekly result views.
type App struct {
	repo  GamesRepository
	feed  Feed
	clock clockwork.Clock
}

func NewApp(repo GamesRepository, feed Feed, clock clockwork.Clock) *App {
	return &App{repo: repo, feed: feed, clock: clock}
}

// SyncWeek pulls one week of games from the feed and upserts them. Week 0
// pulls the whole season. A malformed record skips alone; the rest of the
// batch still lands.
func (a *App) SyncWeek(ctx context.Context, season, week int) (*SyncResult, error) {
	fetched, err := a.feed.FetchGames(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("fetch games: %w", err)
	}

	rows := make([]models.Game, 0, len(fetched))
	for _, g := range fetched {
		rows = append(rows, fromFeedGame(g))
	}

	upserts, skipped, err := a.repo.UpsertGames(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("upsert games: %w", err)
	}

	log.Info().
		Int("season", season).
		Int("week", week).
		Int("fetched", len(fetched)).
		Int("upserts", upserts).
		Int("skipped", skipped).
		Msg("synced games from feed")

	return &SyncResult{
		Season:  season,
		Week:    week,
		Fetched: len(fetched),
		Upserts: upserts,
		Skipped: skipped,
	}, nil
}

// WeekView returns the games for one league's drafted schools in one week.
func (a *App) WeekView(ctx context.Context, leagueID uuid.UUID, week int) (*WeekView, error) {
	if week < 1 {
		return nil, apperrors.Validation("week must be a positive integer")
	}

	season, err := a.repo.GetLeagueSeason(ctx, leagueID)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("league")
		}
		return nil, fmt.Errorf("get league season: %w", err)
	}

	games, err := a.repo.GamesForLeagueWeek(ctx, leagueID, season, week)
	if err != nil {
		return nil, fmt.Errorf("games for league week: %w", err)
	}

	return &WeekView{Season: season, Week: week, Games: games}, nil
}

// CurrentWeek reports the latest week with completed results for a season.
func (a *App) CurrentWeek(ctx context.Context, season int) (int, error) {
	return a.repo.CurrentWeek(ctx, season)
}

func fromFeedGame(g cfbdata_client.GameResponse) models.Game {
	game := models.Game{
		ID:         g.ID,
		Season:     g.Season,
		Week:       g.Week,
		SeasonType: g.SeasonType,
		StartDate:  g.StartDate,
		Completed:  g.Completed,
		HomeID:     g.HomeID,
		HomeTeam:   g.HomeTeam,
		AwayID:     g.AwayID,
		AwayTeam:   g.AwayTeam,
	}
	if g.HomePoints != nil {
		game.HomePoints = *g.HomePoints
	}
	if g.AwayPoints != nil {
		game.AwayPoints = *g.AwayPoints
	}
	return game
}
