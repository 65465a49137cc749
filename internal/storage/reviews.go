package storage

import (
	"context"

	"foodigo/internal/domain"
)

func (r *PostgresRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reviews (id, food_id, user_id, user_name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		review.ID, review.FoodID, review.UserID, review.UserName, review.Rating, review.Comment, review.CreatedAt)
	return err
}

func (r *PostgresRepository) ListFoodReviews(ctx context.Context, foodID string) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, food_id, user_id, user_name, rating, comment, created_at
		FROM reviews
		WHERE food_id = $1
		ORDER BY created_at DESC`, foodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.FoodID, &rev.UserID, &rev.UserName, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepository) FoodStats(ctx context.Context, foodID string) (*domain.FoodStats, error) {
	stats := domain.FoodStats{FoodID: foodID}
	err := r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(ROUND(AVG(rating::numeric), 2), 0)::float8, COUNT(*)
		FROM reviews
		WHERE food_id = $1`, foodID).Scan(&stats.AvgRating, &stats.ReviewCount)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
