package firestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/cardvault/catalog-api/internal/platform/config"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// New creates a Firestore client. Against the emulator no credentials are
// needed; otherwise they come from env (base64 or file). It returns the client
// and a description of which credential source was used.
func New(ctx context.Context, cfg config.Config) (*firestore.Client, string, error) {
	if cfg.FirestoreEmulatorHost != "" {
		// The client library reads FIRESTORE_EMULATOR_HOST itself.
		client, err := firestore.NewClient(ctx, cfg.FirebaseProjectID, option.WithoutAuthentication())
		if err != nil {
			return nil, "", fmt.Errorf("init firestore emulator client: %w", err)
		}
		return client, "emulator", nil
	}

	creds, source, err := cfg.FirebaseCredentialsJSON()
	if err != nil {
		return nil, "", err
	}

	client, err := firestore.NewClient(ctx, cfg.FirebaseProjectID, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, "", fmt.Errorf("init firestore client: %w", err)
	}
	return client, source, nil
}

// Ping reads at most one card document to check connectivity and permissions.
func Ping(ctx context.Context, client *firestore.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	iter := client.Collection("cards").Limit(1).Documents(ctx)
	defer iter.Stop()
	_, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil
	}
	return err
}
