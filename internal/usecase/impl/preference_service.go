// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"suasana/internal/domain/entity"
	"suasana/internal/domain/repository"
	"suasana/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	prefRepo repository.PreferenceRepository
	logger   *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(
	prefRepo repository.PreferenceRepository,
	logger *slog.Logger,
) usecase.PreferenceUsecase {
	return &preferenceService{
		prefRepo: prefRepo,
		logger:   logger,
	}
}

// Create stores a new preference under the token-resolved user and returns
// the full record including the store-assigned ID.
func (srv *preferenceService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreatePreferenceInput) (*entity.Preference, error) {
	srv.logger.Debug("Creating preference", "userID", userID, "name", input.Name)

	pref := &entity.Preference{
		UserID:   userID,
		Ambience: input.Ambience,
		Name:     input.Name,
		Utils:    input.Utils,
		View:     input.View,
	}

	prefID, err := srv.prefRepo.Add(ctx, userID, pref)
	if err != nil {
		srv.logger.Error("Failed to add preference", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to add preference")
	}
	pref.ID = prefID

	return pref, nil
}

// List returns every preference owned by the token-resolved user.
func (srv *preferenceService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Preference, error) {
	srv.logger.Debug("Listing preferences", "userID", userID)

	prefs, err := srv.prefRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.logger.Error("Failed to list preferences", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to list preferences")
	}

	return prefs, nil
}
