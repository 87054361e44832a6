package repository

import (
	"context"
	"fmt"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/cardvault/catalog-api/pkg/model"
	"google.golang.org/api/iterator"
)

const cardsCollection = "cards"

// CardRepository handles Firestore read/write for catalog cards.
type CardRepository struct {
	client *firestore.Client
}

func NewCardRepository(client *firestore.Client) *CardRepository {
	return &CardRepository{client: client}
}

// List loads every card ordered by ID.
func (r *CardRepository) List(ctx context.Context) ([]model.Card, error) {
	iter := r.client.Collection(cardsCollection).OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()
	var result []model.Card
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate cards: %w", err)
		}
		var c model.Card
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("decode card %s: %w", doc.Ref.ID, err)
		}
		if err := checkCard(c); err != nil {
			return nil, fmt.Errorf("card document %s: %w", doc.Ref.ID, err)
		}
		result = append(result, c)
	}
	return result, nil
}

// Count returns the number of card documents.
func (r *CardRepository) Count(ctx context.Context) (int, error) {
	docs, err := r.client.Collection(cardsCollection).Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return len(docs), nil
}

// BatchUpsert writes cards in batches to reduce round trips.
func (r *CardRepository) BatchUpsert(ctx context.Context, cards []model.Card) error {
	if len(cards) == 0 {
		return nil
	}
	const batchSize = 400

	for start := 0; start < len(cards); start += batchSize {
		end := start + batchSize
		if end > len(cards) {
			end = len(cards)
		}
		batch := r.client.Batch()
		for _, c := range cards[start:end] {
			ref := r.client.Collection(cardsCollection).Doc(documentID(c))
			batch.Set(ref, c)
		}
		if _, err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("commit batch [%d:%d]: %w", start, end, err)
		}
	}
	return nil
}

func documentID(c model.Card) string {
	return strconv.Itoa(c.ID)
}
