// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"suasana/internal/domain/entity"
	domainerrors "suasana/internal/domain/errors"
	"suasana/internal/domain/repository"
	"suasana/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile retrieves the profile of the token-resolved user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.logger.Debug("Getting user profile", "userID", userID)

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateName updates the display name, the only mutable profile field.
func (srv *profileService) UpdateName(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) error {
	srv.logger.Info("Updating user profile", "userID", userID)

	if err := srv.userRepo.UpdateName(ctx, userID, input.Name); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return errors.Wrap(err, "failed to update user name")
	}

	return nil
}

// DeleteProfile removes the account together with its preference collection.
func (srv *profileService) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	srv.logger.Info("Deleting user profile", "userID", userID)

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		srv.logger.Error("Failed to delete user", "error", err, "userID", userID)

		return errors.Wrap(err, "failed to delete user")
	}
	srv.logger.Debug("User deleted", "userID", userID)

	return nil
}
