// Package usecase contains testify mocks for the usecase interfaces,
// used by the delivery layer tests.
package usecase

import (
	"context"

	"suasana/internal/domain/entity"
	"suasana/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a testify mock of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockProfileUsecase is a testify mock of usecase.ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileUsecase) UpdateName(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) error {
	args := m.Called(ctx, userID, input)

	return args.Error(0)
}

func (m *MockProfileUsecase) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

// MockPreferenceUsecase is a testify mock of usecase.PreferenceUsecase.
type MockPreferenceUsecase struct {
	mock.Mock
}

func (m *MockPreferenceUsecase) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreatePreferenceInput) (*entity.Preference, error) {
	args := m.Called(ctx, userID, input)
	if pref, ok := args.Get(0).(*entity.Preference); ok {
		return pref, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPreferenceUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entity.Preference, error) {
	args := m.Called(ctx, userID)
	if prefs, ok := args.Get(0).([]*entity.Preference); ok {
		return prefs, args.Error(1)
	}

	return nil, args.Error(1)
}
