package standings

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcdev12/pick6/go/internal/models"
)

// Repository implements StandingsRepository on top of pgx.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	var l models.League
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, season, join_code, created_by, status, roster_cap, created_at, updated_at
		FROM leagues WHERE id = $1`, id).
		Scan(&l.ID, &l.Name, &l.Season, &l.JoinCode, &l.CreatedBy, &l.Status, &l.RosterCap, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// RosterRows returns every pick in the league joined with its member and
// school, ordered by member then draft round.
func (r *Repository) RosterRows(ctx context.Context, leagueID uuid.UUID) ([]RosterRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.user_id, u.display_name, lm.team_name, p.school_id, s.name, p.draft_round
		FROM picks p
		JOIN users u ON u.id = p.user_id
		JOIN league_members lm ON lm.league_id = p.league_id AND lm.user_id = p.user_id
		JOIN schools s ON s.id = p.school_id
		WHERE p.league_id = $1
		ORDER BY p.user_id, p.draft_round`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RosterRow
	for rows.Next() {
		var rr RosterRow
		if err := rows.Scan(&rr.UserID, &rr.DisplayName, &rr.TeamName, &rr.SchoolID, &rr.SchoolName, &rr.DraftRound); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

// GamesForSchools bulk-fetches every game through the given week involving
// any of the schools. One query regardless of roster size.
func (r *Repository) GamesForSchools(ctx context.Context, season, throughWeek int, schoolIDs []int) ([]models.Game, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, season, week, season_type, start_date, completed,
		       home_id, home_team, home_points, away_id, away_team, away_points
		FROM games
		WHERE season = $1 AND week <= $2
		  AND (home_id = ANY($3) OR away_id = ANY($3))
		ORDER BY week, id`, season, throughWeek, schoolIDs)
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

// CurrentWeek is the latest week with any completed game for the season, or
// zero before results exist.
func (r *Repository) CurrentWeek(ctx context.Context, season int) (int, error) {
	var week int
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(MAX(week), 0) FROM games WHERE season = $1 AND completed`, season).
		Scan(&week)
	return week, err
}

func (r *Repository) LeagueIDsByStatus(ctx context.Context, status models.LeagueStatus) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM leagues WHERE status = $1`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
