// Package storage builds the card and stats stores for the configured driver.
package storage

import (
	"context"
	"fmt"
	"log"

	"github.com/cardvault/catalog-api/internal/business/collection"
	"github.com/cardvault/catalog-api/internal/platform/config"
	firestoreclient "github.com/cardvault/catalog-api/internal/platform/firestore"
	"github.com/cardvault/catalog-api/internal/platform/sqlite"
	"github.com/cardvault/catalog-api/internal/repository"
)

// Stores bundles the stores for one driver.
type Stores struct {
	Driver string
	Cards  collection.CardStore
	Seeder collection.CatalogSeeder
	Stats  collection.StatsStore
	close  func() error
}

// Close releases the underlying client, if any.
func (s *Stores) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects to the driver named in cfg. The memory driver starts empty so
// seeding behaves the same for every driver.
func Open(ctx context.Context, cfg config.Config) (*Stores, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		cards := repository.NewMemoryCardRepository(nil)
		return &Stores{
			Driver: cfg.StorageDriver,
			Cards:  cards,
			Seeder: cards,
			Stats:  repository.NewMemoryStatsRepository(),
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		cards := repository.NewSQLiteCardRepository(db)
		log.Printf("opened sqlite catalog at %s", cfg.SQLitePath)
		return &Stores{
			Driver: cfg.StorageDriver,
			Cards:  cards,
			Seeder: cards,
			Stats:  repository.NewSQLiteStatsRepository(db),
			close:  db.Close,
		}, nil

	case config.DriverFirestore:
		client, credsSource, err := firestoreclient.New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("firestore init: %w", err)
		}
		if err := firestoreclient.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("firestore ping: %w", err)
		}
		log.Printf("connected to Firestore project %s using %s credentials", cfg.FirebaseProjectID, credsSource)
		cards := repository.NewCardRepository(client)
		return &Stores{
			Driver: cfg.StorageDriver,
			Cards:  cards,
			Seeder: cards,
			Stats:  repository.NewStatsRepository(client),
			close:  client.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
