package connection

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// FBConnection opens a Firestore client from a service account file. An
// empty projectID lets the SDK read it from the credentials.
func FBConnection(ctx context.Context, credentialsPath, projectID string) (*firestore.Client, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("firebase credentials path is not set")
	}

	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting firestore client: %w", err)
	}

	log.Info().Msg("Firestore connection successful")
	return client, nil
}
