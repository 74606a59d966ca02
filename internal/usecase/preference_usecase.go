// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"suasana/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferenceUsecase defines the identity-scoped operations on the per-user
// preference collection.
type PreferenceUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreatePreferenceInput) (*entity.Preference, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Preference, error)
}

// --- Input DTOs ---

// CreatePreferenceInput carries the free-form preference attributes. They
// are opaque to the core; only presence is validated.
type CreatePreferenceInput struct {
	Ambience string   `json:"ambience" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Utils    []string `json:"utils"`
	View     string   `json:"view" validate:"required"`
}
