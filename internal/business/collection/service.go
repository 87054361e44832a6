package collection

import (
	"context"
	"fmt"
	"time"

	"github.com/cardvault/catalog-api/pkg/model"
	"github.com/cardvault/catalog-api/pkg/util"
)

// CardStore abstracts read access to the catalog.
type CardStore interface {
	List(ctx context.Context) ([]model.Card, error)
}

// CatalogSeeder is implemented by stores that can be filled with a catalog.
type CatalogSeeder interface {
	Count(ctx context.Context) (int, error)
	BatchUpsert(ctx context.Context, cards []model.Card) error
}

// StatsStore persists the latest stats snapshot.
type StatsStore interface {
	SaveCollectionStats(ctx context.Context, stats model.CollectionStats) error
	GetCollectionStats(ctx context.Context) (model.CollectionStats, error)
}

// Snapshot is a persisted stats document plus whether the catalog changed since.
type Snapshot struct {
	model.CollectionStats
	Stale bool `json:"stale"`
}

// Service derives every view from a fresh read of the catalog.
type Service struct {
	cards CardStore
	stats StatsStore
	now   func() time.Time
}

func NewService(cards CardStore, stats StatsStore) *Service {
	return &Service{
		cards: cards,
		stats: stats,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) load(ctx context.Context) ([]model.Card, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cards, nil
}

// Cards returns the catalog filtered by sel.
func (s *Service) Cards(ctx context.Context, sel Selection) ([]model.Card, error) {
	cards, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByRarity(cards, sel), nil
}

// Catalog builds the catalog tab for sel.
func (s *Service) Catalog(ctx context.Context, sel Selection) (CatalogView, error) {
	cards, err := s.load(ctx)
	if err != nil {
		return CatalogView{}, err
	}
	return BuildCatalogView(cards, sel), nil
}

// Collection builds the owned-collection tab.
func (s *Service) Collection(ctx context.Context) (CollectionView, error) {
	cards, err := s.load(ctx)
	if err != nil {
		return CollectionView{}, err
	}
	return BuildCollectionView(cards), nil
}

// Stats aggregates the live catalog.
func (s *Service) Stats(ctx context.Context) (model.CollectionStats, error) {
	cards, err := s.load(ctx)
	if err != nil {
		return model.CollectionStats{}, err
	}
	stats := Aggregate(cards)
	stats.CatalogHash = util.HashCatalog(cards)
	return stats, nil
}

// View builds the payload for one tab.
func (s *Service) View(ctx context.Context, state ViewState) (View, error) {
	cards, err := s.load(ctx)
	if err != nil {
		return View{}, err
	}
	return BuildView(cards, state), nil
}

// RefreshStats aggregates the catalog and persists the result.
func (s *Service) RefreshStats(ctx context.Context) (model.CollectionStats, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return model.CollectionStats{}, err
	}
	stats.LastUpdated = s.now()
	if err := s.stats.SaveCollectionStats(ctx, stats); err != nil {
		return model.CollectionStats{}, fmt.Errorf("save stats snapshot: %w", err)
	}
	return stats, nil
}

// Snapshot returns the last persisted stats. Stale is set when the catalog no
// longer matches the hash the snapshot was built from.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	saved, err := s.stats.GetCollectionStats(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get stats snapshot: %w", err)
	}
	cards, err := s.load(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		CollectionStats: saved,
		Stale:           saved.CatalogHash != util.HashCatalog(cards),
	}, nil
}

// SeedIfEmpty validates cards and writes them to store when it holds no cards.
// It returns the number of cards written.
func SeedIfEmpty(ctx context.Context, store CatalogSeeder, cards []model.Card) (int, error) {
	if err := ValidateCatalog(cards); err != nil {
		return 0, err
	}
	existing, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}
	if err := store.BatchUpsert(ctx, cards); err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	return len(cards), nil
}
