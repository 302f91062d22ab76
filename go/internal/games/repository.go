package games

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pick6/go/internal/models"
	"github.com/mcdev12/pick6/go/internal/sqlutil"
)

// Repository implements GamesRepository on top of pgx.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// UpsertGames writes a batch of feed games inside one transaction, each row
// under its own savepoint so one bad record rolls back alone.
func (r *Repository) UpsertGames(ctx context.Context, games []models.Game) (int, int, error) {
	var upserts, skipped int
	err := sqlutil.Run(ctx, r.pool, func(tx pgx.Tx) error {
		for _, g := range games {
			game := g
			err := sqlutil.RunSub(ctx, tx, func(sub pgx.Tx) error {
				_, err := sub.Exec(ctx, `
					INSERT INTO games (id, season, week, season_type, start_date, completed,
					                   home_id, home_team, home_points, away_id, away_team, away_points)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
					ON CONFLICT (id) DO UPDATE SET
						completed = EXCLUDED.completed,
						start_date = EXCLUDED.start_date,
						home_points = EXCLUDED.home_points,
						away_points = EXCLUDED.away_points`,
					game.ID, game.Season, game.Week, game.SeasonType, game.StartDate, game.Completed,
					game.HomeID, game.HomeTeam, game.HomePoints, game.AwayID, game.AwayTeam, game.AwayPoints)
				return err
			})
			if err != nil {
				skipped++
				log.Warn().Err(err).Int("game_id", game.ID).Msg("skipping bad feed game")
				continue
			}
			upserts++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return upserts, skipped, nil
}

// GamesForLeagueWeek returns the week's games involving any school drafted
// in the league.
func (r *Repository) GamesForLeagueWeek(ctx context.Context, leagueID uuid.UUID, season, week int) ([]models.Game, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT g.id, g.season, g.week, g.season_type, g.start_date, g.completed,
		       g.home_id, g.home_team, g.home_points, g.away_id, g.away_team, g.away_points
		FROM games g
		JOIN picks p ON p.league_id = $1 AND p.school_id IN (g.home_id, g.away_id)
		WHERE g.season = $2 AND g.week = $3
		ORDER BY g.id`, leagueID, season, week)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Game
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.ID, &g.Season, &g.Week, &g.SeasonType, &g.StartDate, &g.Completed,
			&g.HomeID, &g.HomeTeam, &g.HomePoints, &g.AwayID, &g.AwayTeam, &g.AwayPoints); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *Repository) GetLeagueSeason(ctx context.Context, leagueID uuid.UUID) (int, error) {
	var season int
	err := r.pool.QueryRow(ctx, `SELECT season FROM leagues WHERE id = $1`, leagueID).Scan(&season)
	return season, err
}

// CurrentWeek is the latest week with any completed game for the season, or
// zero before results exist.
func (r *Repository) CurrentWeek(ctx context.Context, season int) (int, error) {
	var week int
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(MAX(week), 0) FROM games WHERE season = $1 AND completed`, season).
		Scan(&week)
	return week, err
}
