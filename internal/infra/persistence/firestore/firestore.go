// Package firestore contains the concrete implementation of the
// persistence layer on top of Google Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"suasana/config"
	"suasana/internal/domain/lifecycle"
	"suasana/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const (
	usersCollection       = "users"
	preferencesCollection = "preferensi"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client through the Firebase app, mirroring how
// the store credentials are provisioned in deployment.
func New(params Params) (*firestore.Client, error) {
	if params.Config.Firestore == nil {
		return nil, errors.New("firestore configuration is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var opts []option.ClientOption
	if params.Config.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firestore.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID: params.Config.Firestore.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
