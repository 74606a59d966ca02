// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system. The ID doubles as the
// document key in the backing store; it is generated at registration and
// never reassigned.
type User struct {
	ID           uuid.UUID // Generated at registration, immutable, used as the document key.
	Email        string    // Login identifier; intended unique per account.
	Name         string    // Display name; the only field mutable through the profile API.
	PasswordHash string    // Bcrypt hash of the password. Never returned to clients.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
