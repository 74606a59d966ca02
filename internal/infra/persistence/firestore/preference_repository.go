package firestore

import (
	"context"
	"time"

	"suasana/internal/domain/entity"
	domainerrors "suasana/internal/domain/errors"
	"suasana/internal/domain/repository"
	"suasana/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// preferenceRepository implements the domain.PreferenceRepository interface on Firestore.
type preferenceRepository struct {
	client *firestore.Client
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(client *firestore.Client) repository.PreferenceRepository {
	return &preferenceRepository{client: client}
}

func (repo *preferenceRepository) collection(userID uuid.UUID) *firestore.CollectionRef {
	return repo.client.Collection(usersCollection).Doc(userID.String()).Collection(preferencesCollection)
}

// Add inserts a preference into the user-scoped sub-collection and returns
// the store-assigned document ID.
func (repo *preferenceRepository) Add(ctx context.Context, userID uuid.UUID, pref *entity.Preference) (string, error) {
	pref.UserID = userID
	pref.CreatedAt = time.Now()

	doc := repo.collection(userID).NewDoc()
	if _, err := doc.Set(ctx, model.FromPreferenceDomain(pref)); err != nil {
		return "", domainerrors.NewStoreExecuteError(err, "failed to add preference")
	}
	pref.ID = doc.ID

	return doc.ID, nil
}

// ListByUser returns all preference documents under the given user, in
// store-native order. The result is finite and one-shot.
func (repo *preferenceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Preference, error) {
	iter := repo.collection(userID).Documents(ctx)
	defer iter.Stop()

	prefs := make([]*entity.Preference, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list preferences")
		}

		var prefM model.PreferenceModel
		if err := snap.DataTo(&prefM); err != nil {
			return nil, errors.Wrap(err, "failed to decode preference document")
		}

		pref, err := prefM.ToPreferenceDomain(snap.Ref.ID)
		if err != nil {
			return nil, errors.Wrap(err, "malformed preference document")
		}
		prefs = append(prefs, pref)
	}

	return prefs, nil
}
