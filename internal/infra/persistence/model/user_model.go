package model

import (
	"time"

	"github.com/google/uuid"

	"suasana/internal/domain/entity"
)

// UserModel mirrors a document in the 'users' collection. The document key
// is the user's ID, and the id field is stored redundantly inside the
// document as well.
type UserModel struct {
	ID        string    `firestore:"id"`
	Email     string    `firestore:"email"`
	Name      string    `firestore:"name"`
	Password  string    `firestore:"password"` // bcrypt hash, never leaves the persistence layer
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// FromUserDomain maps a pure domain entity to its persistence model.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func (m *UserModel) ToUserDomain() (*entity.User, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:           id,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.Password,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}
