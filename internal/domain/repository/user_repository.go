// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"suasana/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user document keyed by user.ID.
	// It does not check email uniqueness; that is the caller's concern.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves at most one user matching the email address.
	// Email is expected, not guaranteed, to be unique in the store.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateName performs a partial update of exactly the name field.
	UpdateName(ctx context.Context, id uuid.UUID, name string) error

	// Delete removes the user document together with its preference
	// sub-collection.
	Delete(ctx context.Context, id uuid.UUID) error
}
