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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userRepository implements the domain.UserRepository interface on Firestore.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (repo *userRepository) users() *firestore.CollectionRef {
	return repo.client.Collection(usersCollection)
}

// Create persists a new user document keyed by the user's ID.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	userM := model.FromUserDomain(user)
	if _, err := repo.users().Doc(userM.ID).Set(ctx, userM); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create user")
	}

	return nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	snap, err := repo.users().Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	var userM model.UserModel
	if err := snap.DataTo(&userM); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	user, err := userM.ToUserDomain()
	if err != nil {
		return nil, errors.Wrap(err, "malformed user document")
	}

	return user, nil
}

// FindByEmail retrieves at most one user matching the email address.
// Email uniqueness is a convention enforced at registration, not a store
// constraint, so the query is capped at a single result.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := repo.users().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query user by email")
	}

	var userM model.UserModel
	if err := snap.DataTo(&userM); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	user, err := userM.ToUserDomain()
	if err != nil {
		return nil, errors.Wrap(err, "malformed user document")
	}

	return user, nil
}

// UpdateName performs a partial update of exactly the name field.
func (repo *userRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	_, err := repo.users().Doc(id.String()).Update(ctx, []firestore.Update{
		{Path: "name", Value: name},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update user name")
	}

	return nil
}

// Delete removes the user document and its preference sub-collection.
// Sub-collection documents are not removed automatically by Firestore, so
// they are deleted explicitly through a bulk writer before the parent doc.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	userDoc := repo.users().Doc(id.String())

	bulk := repo.client.BulkWriter(ctx)
	iter := userDoc.Collection(preferencesCollection).DocumentRefs(ctx)
	for {
		ref, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return domainerrors.NewStoreExecuteError(err, "failed to enumerate preferences for delete")
		}
		if _, err := bulk.Delete(ref); err != nil {
			return domainerrors.NewStoreExecuteError(err, "failed to enqueue preference delete")
		}
	}
	bulk.End()

	if _, err := userDoc.Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete user")
	}

	return nil
}
