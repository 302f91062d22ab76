package schools

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcdev12/pick6/go/internal/models"
	"github.com/mcdev12/pick6/go/internal/sqlutil"
)

// Repository implements SchoolsRepository on top of pgx.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const schoolColumns = `id, slug, abbreviation, name, mascot, conference, primary_color, secondary_color`

func scanSchool(row pgx.Row) (*models.School, error) {
	var s models.School
	err := row.Scan(&s.ID, &s.Slug, &s.Abbreviation, &s.Name, &s.Mascot, &s.Conference, &s.PrimaryColor, &s.SecondaryColor)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) ListSchools(ctx context.Context, conference string) ([]models.School, error) {
	query := `SELECT ` + schoolColumns + ` FROM schools ORDER BY name`
	args := []any{}
	if conference != "" {
		query = `SELECT ` + schoolColumns + ` FROM schools WHERE conference = $1 ORDER BY name`
		args = append(args, conference)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.School
	for rows.Next() {
		s, err := scanSchool(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *Repository) GetSchool(ctx context.Context, id int) (*models.School, error) {
	return scanSchool(r.pool.QueryRow(ctx, `SELECT `+schoolColumns+` FROM schools WHERE id = $1`, id))
}

// UpsertSchools writes the feed catalog, one savepoint per row.
func (r *Repository) UpsertSchools(ctx context.Context, schools []models.School) (int, error) {
	var written int
	err := sqlutil.Run(ctx, r.pool, func(tx pgx.Tx) error {
		for _, s := range schools {
			school := s
			err := sqlutil.RunSub(ctx, tx, func(sub pgx.Tx) error {
				_, err := sub.Exec(ctx, `
					INSERT INTO schools (id, slug, abbreviation, name, mascot, conference, primary_color, secondary_color)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
					ON CONFLICT (id) DO UPDATE SET
						slug = EXCLUDED.slug,
						abbreviation = EXCLUDED.abbreviation,
						name = EXCLUDED.name,
						mascot = EXCLUDED.mascot,
						conference = EXCLUDED.conference,
						primary_color = EXCLUDED.primary_color,
						secondary_color = EXCLUDED.secondary_color`,
					school.ID, school.Slug, school.Abbreviation, school.Name, school.Mascot,
					school.Conference, school.PrimaryColor, school.SecondaryColor)
				return err
			})
			if err != nil {
				continue
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}
