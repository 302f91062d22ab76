package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcdev12/pick6/go/internal/models"
)

// Repository implements UsersRepository on top of pgx.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const userColumns = `id, email, display_name, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, display_name)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		user.ID, user.Email, user.DisplayName)
	return scanUser(row)
}

func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *Repository) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (*models.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET display_name = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, displayName)
	return scanUser(row)
}
