// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"suasana/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the identity-scoped profile operations. The user
// ID always comes from a verified session token, never from request data.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateName(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) error
	DeleteProfile(ctx context.Context, userID uuid.UUID) error
}

// --- Input DTOs ---

// UpdateProfileInput defines the data accepted by the profile update.
// Name is the only mutable field in this design.
type UpdateProfileInput struct {
	Name string `json:"name" validate:"required"`
}
