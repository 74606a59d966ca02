package model

import (
	"time"

	"github.com/google/uuid"

	"suasana/internal/domain/entity"
)

// PreferenceModel mirrors a document in the per-user 'preferensi'
// sub-collection. The document ID is store-assigned and not part of the
// document body; userId is kept inside the body as a lookup key.
type PreferenceModel struct {
	UserID    string    `firestore:"userId"`
	Ambience  string    `firestore:"ambience"`
	Name      string    `firestore:"name"`
	Utils     []string  `firestore:"utils"`
	View      string    `firestore:"view"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// FromPreferenceDomain maps a pure domain entity to its persistence model.
func FromPreferenceDomain(pref *entity.Preference) *PreferenceModel {
	return &PreferenceModel{
		UserID:    pref.UserID.String(),
		Ambience:  pref.Ambience,
		Name:      pref.Name,
		Utils:     pref.Utils,
		View:      pref.View,
		CreatedAt: pref.CreatedAt,
	}
}

// ToPreferenceDomain maps a persistence model back to a pure domain entity,
// attaching the store-assigned document ID.
func (m *PreferenceModel) ToPreferenceDomain(docID string) (*entity.Preference, error) {
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}

	return &entity.Preference{
		ID:        docID,
		UserID:    userID,
		Ambience:  m.Ambience,
		Name:      m.Name,
		Utils:     m.Utils,
		View:      m.View,
		CreatedAt: m.CreatedAt,
	}, nil
}
