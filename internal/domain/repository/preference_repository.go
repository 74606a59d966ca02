package repository

import (
	"context"

	"suasana/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferenceRepository defines the operations on the per-user preference
// collection. All operations are scoped to the owning user's ID.
type PreferenceRepository interface {
	// Add inserts a preference into the user-scoped collection and
	// returns the store-assigned document ID.
	Add(ctx context.Context, userID uuid.UUID, pref *entity.Preference) (string, error)

	// ListByUser returns all preference documents under the given user,
	// in store-native order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Preference, error)
}
