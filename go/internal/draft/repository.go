package draft

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcdev12/pick6/go/internal/models"
	"github.com/mcdev12/pick6/go/internal/sqlutil"
)

// Queries runs draft SQL against either the pool or a transaction.
type Queries struct {
	db sqlutil.DBTX
}

func NewQueries(db sqlutil.DBTX) *Queries {
	return &Queries{db: db}
}

// Repository implements DraftRepository on top of pgx.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Queries() TxQueries {
	return NewQueries(r.pool)
}

// WithTx runs fn inside one transaction. The app locks the league row as its
// first statement, which serializes all draft mutations per league.
func (r *Repository) WithTx(ctx context.Context, fn func(q TxQueries) error) error {
	return sqlutil.Run(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(NewQueries(tx))
	})
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

func (q *Queries) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	row := q.db.QueryRow(ctx, `SELECT `+leagueColumns+` FROM leagues WHERE id = $1`, id)
	return scanLeague(row)
}

func (q *Queries) GetLeagueForUpdate(ctx context.Context, id uuid.UUID) (*models.League, error) {
	row := q.db.QueryRow(ctx, `SELECT `+leagueColumns+` FROM leagues WHERE id = $1 FOR UPDATE`, id)
	return scanLeague(row)
}

func (q *Queries) UpdateLeagueStatus(ctx context.Context, id uuid.UUID, status models.LeagueStatus) error {
	_, err := q.db.Exec(ctx, `UPDATE leagues SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	return err
}

func (q *Queries) ListMembers(ctx context.Context, leagueID uuid.UUID) ([]MemberEntry, error) {
	rows, err := q.db.Query(ctx, `
		SELECT lm.league_id, lm.user_id, lm.team_name, lm.draft_position, lm.joined_at, u.display_name
		FROM league_members lm
		JOIN users u ON u.id = lm.user_id
		WHERE lm.league_id = $1
		ORDER BY lm.draft_position NULLS LAST, lm.joined_at`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []MemberEntry
	for rows.Next() {
		var m MemberEntry
		if err := rows.Scan(&m.LeagueID, &m.UserID, &m.TeamName, &m.DraftPosition, &m.JoinedAt, &m.DisplayName); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (q *Queries) SetDraftPosition(ctx context.Context, leagueID, userID uuid.UUID, position int) error {
	_, err := q.db.Exec(ctx, `
		UPDATE league_members SET draft_position = $3
		WHERE league_id = $1 AND user_id = $2`, leagueID, userID, position)
	return err
}

func (q *Queries) ClearDraftPositions(ctx context.Context, leagueID uuid.UUID) error {
	_, err := q.db.Exec(ctx, `UPDATE league_members SET draft_position = NULL WHERE league_id = $1`, leagueID)
	return err
}

func (q *Queries) DeleteMember(ctx context.Context, leagueID, userID uuid.UUID) error {
	_, err := q.db.Exec(ctx, `DELETE FROM league_members WHERE league_id = $1 AND user_id = $2`, leagueID, userID)
	return err
}

func (q *Queries) GetSchool(ctx context.Context, schoolID int) (*models.School, error) {
	var s models.School
	err := q.db.QueryRow(ctx, `
		SELECT id, slug, abbreviation, name, mascot, conference, primary_color, secondary_color
		FROM schools WHERE id = $1`, schoolID).
		Scan(&s.ID, &s.Slug, &s.Abbreviation, &s.Name, &s.Mascot, &s.Conference, &s.PrimaryColor, &s.SecondaryColor)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (q *Queries) IsSchoolTaken(ctx context.Context, leagueID uuid.UUID, schoolID int) (bool, error) {
	var taken bool
	err := q.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM picks WHERE league_id = $1 AND school_id = $2)`, leagueID, schoolID).
		Scan(&taken)
	return taken, err
}

const pickColumns = `league_id, user_id, school_id, draft_round, draft_pick_overall, drafted_at`

func (q *Queries) InsertPick(ctx context.Context, pick models.Pick) (*models.Pick, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO picks (league_id, user_id, school_id, draft_round, draft_pick_overall, drafted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+pickColumns,
		pick.LeagueID, pick.UserID, pick.SchoolID, pick.DraftRound, pick.DraftPickOverall, pick.DraftedAt)
	var p models.Pick
	if err := row.Scan(&p.LeagueID, &p.UserID, &p.SchoolID, &p.DraftRound, &p.DraftPickOverall, &p.DraftedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (q *Queries) scanPicks(rows pgx.Rows) ([]models.Pick, error) {
	defer rows.Close()
	var picks []models.Pick
	for rows.Next() {
		var p models.Pick
		if err := rows.Scan(&p.LeagueID, &p.UserID, &p.SchoolID, &p.DraftRound, &p.DraftPickOverall, &p.DraftedAt); err != nil {
			return nil, err
		}
		picks = append(picks, p)
	}
	return picks, rows.Err()
}

func (q *Queries) PicksForLeague(ctx context.Context, leagueID uuid.UUID) ([]models.Pick, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+pickColumns+` FROM picks
		WHERE league_id = $1 ORDER BY draft_pick_overall`, leagueID)
	if err != nil {
		return nil, err
	}
	return q.scanPicks(rows)
}

func (q *Queries) PicksForMember(ctx context.Context, leagueID, userID uuid.UUID) ([]models.Pick, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+pickColumns+` FROM picks
		WHERE league_id = $1 AND user_id = $2 ORDER BY draft_round`, leagueID, userID)
	if err != nil {
		return nil, err
	}
	return q.scanPicks(rows)
}

func (q *Queries) PickCount(ctx context.Context, leagueID, userID uuid.UUID) (int, error) {
	var count int
	err := q.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM picks WHERE league_id = $1 AND user_id = $2`, leagueID, userID).
		Scan(&count)
	return count, err
}

func (q *Queries) CountPicks(ctx context.Context, leagueID uuid.UUID) (int, error) {
	var count int
	err := q.db.QueryRow(ctx, `SELECT COUNT(*) FROM picks WHERE league_id = $1`, leagueID).Scan(&count)
	return count, err
}

func (q *Queries) PickCountsByMember(ctx context.Context, leagueID uuid.UUID) (map[uuid.UUID]int, error) {
	rows, err := q.db.Query(ctx, `
		SELECT user_id, COUNT(*) FROM picks WHERE league_id = $1 GROUP BY user_id`, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var userID uuid.UUID
		var count int
		if err := rows.Scan(&userID, &count); err != nil {
			return nil, err
		}
		counts[userID] = count
	}
	return counts, rows.Err()
}

func (q *Queries) DeletePicksForMember(ctx context.Context, leagueID, userID uuid.UUID) (int, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM picks WHERE league_id = $1 AND user_id = $2`, leagueID, userID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (q *Queries) DeletePicksForLeague(ctx context.Context, leagueID uuid.UUID) (int, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM picks WHERE league_id = $1`, leagueID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

const draftStateColumns = `league_id, current_pick_overall, current_user_id, total_picks, started_at, completed_at`

func scanDraftState(row pgx.Row) (*models.DraftState, error) {
	var s models.DraftState
	err := row.Scan(&s.LeagueID, &s.CurrentPickOverall, &s.CurrentUserID, &s.TotalPicks, &s.StartedAt, &s.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (q *Queries) GetDraftState(ctx context.Context, leagueID uuid.UUID) (*models.DraftState, error) {
	row := q.db.QueryRow(ctx, `SELECT `+draftStateColumns+` FROM draft_states WHERE league_id = $1`, leagueID)
	return scanDraftState(row)
}

func (q *Queries) GetDraftStateForUpdate(ctx context.Context, leagueID uuid.UUID) (*models.DraftState, error) {
	row := q.db.QueryRow(ctx, `SELECT `+draftStateColumns+` FROM draft_states WHERE league_id = $1 FOR UPDATE`, leagueID)
	return scanDraftState(row)
}

func (q *Queries) CreateDraftState(ctx context.Context, state models.DraftState) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO draft_states (league_id, current_pick_overall, current_user_id, total_picks, started_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		state.LeagueID, state.CurrentPickOverall, state.CurrentUserID, state.TotalPicks, state.StartedAt, state.CompletedAt)
	return err
}

func (q *Queries) UpdateDraftState(ctx context.Context, state models.DraftState) error {
	_, err := q.db.Exec(ctx, `
		UPDATE draft_states
		SET current_pick_overall = $2, current_user_id = $3, total_picks = $4, completed_at = $5
		WHERE league_id = $1`,
		state.LeagueID, state.CurrentPickOverall, state.CurrentUserID, state.TotalPicks, state.CompletedAt)
	return err
}

func (q *Queries) DeleteDraftState(ctx context.Context, leagueID uuid.UUID) error {
	_, err := q.db.Exec(ctx, `DELETE FROM draft_states WHERE league_id = $1`, leagueID)
	return err
}
