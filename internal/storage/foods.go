package storage

import (
	"context"

	"foodigo/internal/domain"
	"foodigo/internal/service"
)

const foodColumns = "id, name, description, price, category, image, stock, avg_rating, review_count, created_at"

func scanFood(row scanner) (domain.Food, error) {
	var food domain.Food
	err := row.Scan(&food.ID, &food.Name, &food.Description, &food.Price, &food.Category,
		&food.Image, &food.Stock, &food.AvgRating, &food.ReviewCount, &food.CreatedAt)
	return food, err
}

func (r *PostgresRepository) CreateFood(ctx context.Context, food *domain.Food) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO foods (id, name, description, price, category, image, stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		food.ID, food.Name, food.Description, food.Price, food.Category, food.Image, food.Stock, food.CreatedAt)
	return err
}

func (r *PostgresRepository) ListFoods(ctx context.Context) ([]domain.Food, error) {
	return r.queryFoods(ctx, "SELECT "+foodColumns+" FROM foods ORDER BY created_at")
}

func (r *PostgresRepository) GetFood(ctx context.Context, id string) (*domain.Food, error) {
	food, err := scanFood(r.DB.QueryRowContext(ctx, "SELECT "+foodColumns+" FROM foods WHERE id = $1", id))
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *PostgresRepository) DeleteFood(ctx context.Context, id string) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx, "DELETE FROM foods WHERE id = $1", id))
}

func (r *PostgresRepository) UpdateFoodStock(ctx context.Context, id string, stock int) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx, "UPDATE foods SET stock = $1 WHERE id = $2", stock, id))
}

func (r *PostgresRepository) UpdateFoodDetails(ctx context.Context, id string, details service.FoodDetails) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx,
		"UPDATE foods SET stock = $1, category = $2, price = $3 WHERE id = $4",
		details.Stock, details.Category, details.Price, id))
}

// ListLowStock skips sold-out items; those are reported by the storefront.
func (r *PostgresRepository) ListLowStock(ctx context.Context, threshold int) ([]domain.Food, error) {
	return r.queryFoods(ctx,
		"SELECT "+foodColumns+" FROM foods WHERE stock > 0 AND stock <= $1 ORDER BY stock",
		threshold)
}

func (r *PostgresRepository) queryFoods(ctx context.Context, query string, args ...any) ([]domain.Food, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := []domain.Food{}
	for rows.Next() {
		food, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}
