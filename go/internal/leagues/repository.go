package leagues

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcdev12/pick6/go/internal/models"
)

// Repository implements LeaguesRepository on top of pgx.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const leagueColumns = `id, name, season, join_code, created_by, status, roster_cap, created_at, updated_at`

func scanLeague(row pgx.Row) (*models.League, error) {
	var l models.League
	err := row.Scan(&l.ID, &l.Name, &l.Season, &l.JoinCode, &l.CreatedBy, &l.Status, &l.RosterCap, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) CreateLeague(ctx context.Context, league models.League) (*models.League, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO leagues (id, name, season, join_code, created_by, status, roster_cap)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+leagueColumns,
		league.ID, league.Name, league.Season, league.JoinCode, league.CreatedBy, league.Status, league.RosterCap)
	return scanLeague(row)
}

func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return scanLeague(r.pool.QueryRow(ctx, `SELECT `+leagueColumns+` FROM leagues WHERE id = $1`, id))
}

func (r *Repository) GetLeagueByJoinCode(ctx context.Context, code string) (*models.League, error) {
	return scanLeague(r.pool.QueryRow(ctx, `SELECT `+leagueColumns+` FROM leagues WHERE join_code = $1`, code))
}

func (r *Repository) UpdateLeague(ctx context.Context, id uuid.UUID, name string, rosterCap int) (*models.League, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE leagues SET name = $2, roster_cap = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+leagueColumns, id, name, rosterCap)
	return scanLeague(row)
}

func (r *Repository) UpdateLeagueStatus(ctx context.Context, id uuid.UUID, status models.LeagueStatus) error {
	_, err := r.pool.Exec(ctx, `UPDATE leagues SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	return err
}

func (r *Repository) AddMember(ctx context.Context, member models.LeagueMember) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO league_members (league_id, user_id, team_name, joined_at)
		VALUES ($1, $2, $3, $4)`,
		member.LeagueID, member.UserID, member.TeamName, member.JoinedAt)
	return err
}

func (r *Repository) GetMember(ctx context.Context, leagueID, userID uuid.UUID) (*models.LeagueMember, error) {
	var m models.LeagueMember
	err := r.pool.QueryRow(ctx, `
		SELECT league_id, user_id, team_name, draft_position, joined_at
		FROM league_members WHERE league_id = $1 AND user_id = $2`, leagueID, userID).
		Scan(&m.LeagueID, &m.UserID, &m.TeamName, &m.DraftPosition, &m.JoinedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) ListMembers(ctx context.Context, leagueID uuid.UUID) ([]MemberInfo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT lm.user_id, u.display_name, lm.team_name, lm.draft_position, lm.joined_at
		FROM league_members lm
		JOIN users u ON u.id = lm.user_id
		WHERE lm.league_id = $1
		ORDER BY lm.draft_position NULLS LAST, lm.joined_at`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MemberInfo
	for rows.Next() {
		var m MemberInfo
		if err := rows.Scan(&m.UserID, &m.DisplayName, &m.TeamName, &m.DraftPosition, &m.JoinedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateTeamName(ctx context.Context, leagueID, userID uuid.UUID, teamName string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE league_members SET team_name = $3
		WHERE league_id = $1 AND user_id = $2`, leagueID, userID, teamName)
	return err
}

func (r *Repository) ListLeaguesForUser(ctx context.Context, userID uuid.UUID) ([]Summary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT l.id, l.name, l.season, l.join_code, l.created_by, l.status, l.roster_cap, l.created_at, l.updated_at,
		       lm.team_name,
		       (SELECT COUNT(*) FROM league_members c WHERE c.league_id = l.id) AS member_count
		FROM leagues l
		JOIN league_members lm ON lm.league_id = l.id
		WHERE lm.user_id = $1
		ORDER BY l.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		l := &s.League
		if err := rows.Scan(&l.ID, &l.Name, &l.Season, &l.JoinCode, &l.CreatedBy, &l.Status, &l.RosterCap,
			&l.CreatedAt, &l.UpdatedAt, &s.TeamName, &s.MemberCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, display_name, created_at, updated_at FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Email, &u.DisplayName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
