package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/Amaldev1010/Archin-Eventmng/internal/app/models"
	appRepos "github.com/Amaldev1010/Archin-Eventmng/internal/app/repositories"
	"github.com/Amaldev1010/Archin-Eventmng/internal/pkg/auth"
)

// Default coordinator credentials for an empty database. Meant for local
// development; change or remove the account in production.
const (
	defaultCoordinatorUsername = "admin"
	defaultCoordinatorEmail    = "admin@eventmng.local"
	defaultCoordinatorPassword = "admin12345"
)

// CreateDefaultData seeds a default coordinator account when the users table
// is empty, so a fresh database is immediately usable.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var hasUsers bool
	if err := dbPool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users)`).Scan(&hasUsers); err != nil {
		return fmt.Errorf("failed to check for existing users: %w", err)
	}

	if hasUsers {
		lgr.Debug().Msg("Users already present, skipping default data")
		return nil
	}

	hashedPassword, err := auth.HashPassword(defaultCoordinatorPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default coordinator password: %w", err)
	}

	userRepo := appRepos.NewUserRepository(dbPool)
	id, err := userRepo.CreateUser(ctx, &appModels.User{
		Username: defaultCoordinatorUsername,
		Email:    defaultCoordinatorEmail,
		Password: hashedPassword,
		Role:     appModels.RoleCoordinator,
	})
	if err != nil {
		return fmt.Errorf("failed to create default coordinator: %w", err)
	}

	lgr.Info().
		Int64("userID", id).
		Str("username", defaultCoordinatorUsername).
		Msg("Created default coordinator account")

	return nil
}
