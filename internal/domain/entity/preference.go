package entity

import (
	"time"

	"github.com/google/uuid"
)

// Preference is a named bundle of place attributes owned by exactly one
// user. It lives in a sub-collection under the owning user's document, so
// UserID is kept as a plain lookup key rather than an ownership pointer.
type Preference struct {
	ID        string    // Store-assigned document ID, unique within the owner's collection.
	UserID    uuid.UUID // Back-reference to the owning user.
	Ambience  string
	Name      string
	Utils     []string
	View      string
	CreatedAt time.Time
}
