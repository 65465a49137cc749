package storage

import (
	"context"

	"foodigo/internal/domain"
)

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO categories (id, name, description, image, created_at) VALUES ($1, $2, $3, $4, $5)",
		category.ID, category.Name, category.Description, category.Image, category.CreatedAt)
	return err
}

func (r *PostgresRepository) CategoryNameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1)", name).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, description, image, created_at
		FROM categories
		ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, description, image, created_at FROM categories WHERE id = $1", id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, category *domain.Category) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx,
		"UPDATE categories SET name = $1, description = $2, image = $3 WHERE id = $4",
		category.Name, category.Description, category.Image, category.ID))
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id string) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id))
}
