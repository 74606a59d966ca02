package repository

import (
	"context"

	"suasana/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPreferenceRepository is a testify mock of repository.PreferenceRepository.
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) Add(ctx context.Context, userID uuid.UUID, pref *entity.Preference) (string, error) {
	args := m.Called(ctx, userID, pref)

	return args.String(0), args.Error(1)
}

func (m *MockPreferenceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Preference, error) {
	args := m.Called(ctx, userID)
	if prefs, ok := args.Get(0).([]*entity.Preference); ok {
		return prefs, args.Error(1)
	}

	return nil, args.Error(1)
}
