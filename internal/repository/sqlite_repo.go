package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cardvault/catalog-api/pkg/model"
)

// SQLiteCardRepository reads and writes cards in the cards table.
type SQLiteCardRepository struct {
	db *sql.DB
}

func NewSQLiteCardRepository(db *sql.DB) *SQLiteCardRepository {
	return &SQLiteCardRepository{db: db}
}

// List loads every card ordered by ID.
func (r *SQLiteCardRepository) List(ctx context.Context) ([]model.Card, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, rarity, value, image, owned, category FROM cards ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	var result []model.Card
	for rows.Next() {
		var c model.Card
		var rarity string
		if err := rows.Scan(&c.ID, &c.Name, &rarity, &c.Value, &c.Image, &c.Owned, &c.Category); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		c.Rarity = model.Rarity(rarity)
		if err := checkCard(c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}
	return result, nil
}

func (r *SQLiteCardRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return n, nil
}

// BatchUpsert writes all cards in one transaction.
func (r *SQLiteCardRepository) BatchUpsert(ctx context.Context, cards []model.Card) error {
	if len(cards) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cards (id, name, rarity, value, image, owned, category)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			rarity = excluded.rarity,
			value = excluded.value,
			image = excluded.image,
			owned = excluded.owned,
			category = excluded.category`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cards {
		if _, err := stmt.ExecContext(ctx, c.ID, c.Name, string(c.Rarity), c.Value, c.Image, c.Owned, c.Category); err != nil {
			return fmt.Errorf("upsert card %d: %w", c.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cards: %w", err)
	}
	return nil
}

// SQLiteStatsRepository stores the stats snapshot as a JSON row.
type SQLiteStatsRepository struct {
	db *sql.DB
}

func NewSQLiteStatsRepository(db *sql.DB) *SQLiteStatsRepository {
	return &SQLiteStatsRepository{db: db}
}

func (r *SQLiteStatsRepository) SaveCollectionStats(ctx context.Context, stats model.CollectionStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode collection stats: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO collection_stats (id, payload, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		string(payload), stats.LastUpdated.UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("save collection stats: %w", err)
	}
	return nil
}

func (r *SQLiteStatsRepository) GetCollectionStats(ctx context.Context) (model.CollectionStats, error) {
	var payload string
	var updatedAt int64
	err := r.db.QueryRowContext(ctx, `SELECT payload, updated_at FROM collection_stats WHERE id = 1`).Scan(&payload, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CollectionStats{}, ErrNotFound
	}
	if err != nil {
		return model.CollectionStats{}, fmt.Errorf("get collection stats: %w", err)
	}
	var stats model.CollectionStats
	if err := json.Unmarshal([]byte(payload), &stats); err != nil {
		return model.CollectionStats{}, fmt.Errorf("decode collection stats: %w", err)
	}
	stats.LastUpdated = time.UnixMilli(updatedAt).UTC()
	return stats, nil
}
