package storage

import (
	"context"
	"database/sql"
	"time"

	"foodigo/internal/domain"

	"github.com/redis/go-redis/v9"
)

const foodStatsTTL = 24 * time.Hour

// Store maintains the aggregates derived from lifecycle events.
type Store struct {
	db  *sql.DB
	rdb *redis.Client
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

func (s *Store) UpdateFoodRating(ctx context.Context, foodID string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE foods
		SET avg_rating = (
			SELECT COALESCE(ROUND(AVG(rating::numeric), 2), 0)
			FROM reviews
			WHERE food_id = $1
		),
		review_count = (
			SELECT COUNT(*)
			FROM reviews
			WHERE food_id = $1
		)
		WHERE id = $1
	`, foodID)
	if err != nil {
		return err
	}

	var avgRating float64
	var reviewCount int
	if err := s.db.QueryRowContext(ctx, `
		SELECT avg_rating, review_count
		FROM foods
		WHERE id = $1
	`, foodID).Scan(&avgRating, &reviewCount); err != nil {
		return err
	}

	key := foodStatsKey(foodID)
	s.rdb.HSet(ctx, key, map[string]interface{}{
		"avg_rating":   avgRating,
		"review_count": reviewCount,
		"last_updated": time.Now().Unix(),
	})
	s.rdb.Expire(ctx, key, foodStatsTTL)
	return nil
}

// DecrementStock subtracts ordered quantities, clamping at zero. Lines without
// a food id are skipped.
func (s *Store) DecrementStock(ctx context.Context, items []domain.OrderItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, item := range items {
		if item.FoodID == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE foods SET stock = GREATEST(stock - $1, 0) WHERE id = $2",
			item.Quantity, item.FoodID); err != nil {
			return err
		}
	}
	return tx.Commit()
}
