package schools

import (
	"context"
	"fmt"

	"github.com/mcdev12/pick6/go/internal/apperrors"
	"github.com/mcdev12/pick6/go/internal/models"
	"github.com/mcdev12/pick6/go/internal/sqlutil"
)

// SchoolsRepository defines what the app layer needs from the repository.
type SchoolsRepository interface {
	ListSchools(ctx context.Context, conference string) ([]models.School, error)
	GetSchool(ctx context.Context, id int) (*models.School, error)
	UpsertSchools(ctx context.Context, schools []models.School) (int, error)
}

// App serves the school reference catalog.
type App struct {
	repo SchoolsRepository
}

func NewApp(repo SchoolsRepository) *App {
	return &App{repo: repo}
}

// List returns schools, optionally filtered by conference.
func (a *App) List(ctx context.Context, conference string) ([]models.School, error) {
	schools, err := a.repo.ListSchools(ctx, conference)
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	return schools, nil
}

// Get returns one school.
func (a *App) Get(ctx context.Context, id int) (*models.School, error) {
	school, err := a.repo.GetSchool(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("school")
		}
		return nil, fmt.Errorf("get school: %w", err)
	}
	return school, nil
}

// Load writes a batch of schools from the feed catalog.
func (a *App) Load(ctx context.Context, schools []models.School) (int, error) {
	n, err := a.repo.UpsertSchools(ctx, schools)
	if err != nil {
		return 0, fmt.Errorf("upsert schools: %w", err)
	}
	return n, nil
}
