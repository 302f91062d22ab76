package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pick6/go/internal/apperrors"
	"github.com/mcdev12/pick6/go/internal/models"
	"github.com/mcdev12/pick6/go/internal/sqlutil"
)

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (*models.User, error)
}

// TokenIssuer mints session tokens; the auth package provides the JWT one.
type TokenIssuer interface {
	IssueToken(user models.User) (string, error)
}

// App handles users business logic
type App struct {
	repo   UsersRepository
	issuer TokenIssuer
}

// NewApp creates a new users App
func NewApp(repo UsersRepository, issuer TokenIssuer) *App {
	return &App{
		repo:   repo,
		issuer: issuer,
	}
}

// Login resolves the account for an email, creating it on first sight, and
// returns a session token. Password mechanics live outside this service.
func (a *App) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.Validation("a valid email is required")
	}

	user, err := a.repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
	case sqlutil.IsNoRows(err):
		displayName := strings.TrimSpace(req.DisplayName)
		if displayName == "" {
			displayName = strings.SplitN(email, "@", 2)[0]
		}
		user, err = a.repo.CreateUser(ctx, models.User{
			ID:          uuid.New(),
			Email:       email,
			DisplayName: displayName,
		})
		if err != nil {
			// A concurrent first login may have won the insert.
			if conflict := apperrors.FromPg(err, "account already exists"); apperrors.KindOf(conflict) == apperrors.KindConflict {
				user, err = a.repo.GetUserByEmail(ctx, email)
			}
			if err != nil {
				return nil, fmt.Errorf("create user: %w", err)
			}
		} else {
			log.Info().Str("email", email).Msg("created user")
		}
	default:
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	token, err := a.issuer.IssueToken(*user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResponse{Token: token, User: *user}, nil
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := a.repo.GetUser(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("user")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateDisplayName changes the caller's display name.
func (a *App) UpdateDisplayName(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*models.User, error) {
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		return nil, apperrors.Validation("display name is required")
	}

	user, err := a.repo.UpdateDisplayName(ctx, id, displayName)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("user")
		}
		return nil, fmt.Errorf("update display name: %w", err)
	}
	return user, nil
}
