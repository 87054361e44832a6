package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/cardvault/catalog-api/pkg/model"
)

// MemoryCardRepository keeps the catalog in process memory.
type MemoryCardRepository struct {
	mu    sync.RWMutex
	cards []model.Card
}

func NewMemoryCardRepository(cards []model.Card) *MemoryCardRepository {
	r := &MemoryCardRepository{}
	r.cards = append(r.cards, cards...)
	return r
}

// List returns a copy of the catalog in insertion order.
func (r *MemoryCardRepository) List(ctx context.Context) ([]model.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Card, len(r.cards))
	copy(out, r.cards)
	return out, nil
}

func (r *MemoryCardRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cards), nil
}

// BatchUpsert replaces cards with matching IDs and appends the rest, keeping the
// catalog ordered by ID.
func (r *MemoryCardRepository) BatchUpsert(ctx context.Context, cards []model.Card) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	index := make(map[int]int, len(r.cards))
	for i, c := range r.cards {
		index[c.ID] = i
	}
	for _, c := range cards {
		if i, ok := index[c.ID]; ok {
			r.cards[i] = c
			continue
		}
		index[c.ID] = len(r.cards)
		r.cards = append(r.cards, c)
	}
	sort.SliceStable(r.cards, func(i, j int) bool { return r.cards[i].ID < r.cards[j].ID })
	return nil
}

// MemoryStatsRepository holds the last stats snapshot.
type MemoryStatsRepository struct {
	mu    sync.Mutex
	stats *model.CollectionStats
}

func NewMemoryStatsRepository() *MemoryStatsRepository {
	return &MemoryStatsRepository{}
}

func (r *MemoryStatsRepository) SaveCollectionStats(ctx context.Context, stats model.CollectionStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats.ByRarity = copyByRarity(stats.ByRarity)
	r.stats = &stats
	return nil
}

func (r *MemoryStatsRepository) GetCollectionStats(ctx context.Context) (model.CollectionStats, error) {
	if err := ctx.Err(); err != nil {
		return model.CollectionStats{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stats == nil {
		return model.CollectionStats{}, ErrNotFound
	}
	out := *r.stats
	out.ByRarity = copyByRarity(out.ByRarity)
	return out, nil
}

func copyByRarity(in map[model.Rarity]model.RarityStats) map[model.Rarity]model.RarityStats {
	if in == nil {
		return nil
	}
	out := make(map[model.Rarity]model.RarityStats, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
