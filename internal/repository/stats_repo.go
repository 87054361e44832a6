package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/cardvault/catalog-api/pkg/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatsRepository manages the system/collection_stats singleton document.
type StatsRepository struct {
	client *firestore.Client
}

func NewStatsRepository(client *firestore.Client) *StatsRepository {
	return &StatsRepository{client: client}
}

func (r *StatsRepository) ref() *firestore.DocumentRef {
	return r.client.Collection("system").Doc("collection_stats")
}

func (r *StatsRepository) SaveCollectionStats(ctx context.Context, stats model.CollectionStats) error {
	if _, err := r.ref().Set(ctx, stats); err != nil {
		return fmt.Errorf("save collection stats: %w", err)
	}
	return nil
}

func (r *StatsRepository) GetCollectionStats(ctx context.Context) (model.CollectionStats, error) {
	snap, err := r.ref().Get(ctx)
	if status.Code(err) == codes.NotFound {
		return model.CollectionStats{}, ErrNotFound
	}
	if err != nil {
		return model.CollectionStats{}, fmt.Errorf("get collection stats: %w", err)
	}
	var stats model.CollectionStats
	if err := snap.DataTo(&stats); err != nil {
		return model.CollectionStats{}, fmt.Errorf("decode collection stats: %w", err)
	}
	return stats, nil
}
