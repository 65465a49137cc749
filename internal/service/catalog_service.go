package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"foodigo/internal/domain"

	"github.com/google/uuid"
)

type Upload struct {
	Filename string
	Body     io.Reader
}

type FoodDetails struct {
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type CatalogService struct {
	foods             FoodRepository
	categories        CategoryRepository
	images            ImageStore
	lowStockThreshold int
}

func NewCatalogService(foods FoodRepository, categories CategoryRepository, images ImageStore, lowStockThreshold int) *CatalogService {
	return &CatalogService{
		foods:             foods,
		categories:        categories,
		images:            images,
		lowStockThreshold: lowStockThreshold,
	}
}

func (s *CatalogService) AddFood(ctx context.Context, food *domain.Food, image Upload) error {
	if image.Body == nil {
		return invalid("Image is required")
	}
	if food.Name == "" || food.Description == "" || food.Category == "" {
		return invalid("All fields including stock are required")
	}
	if food.Price < 0 {
		return invalid("Price must be a valid positive number")
	}
	if food.Stock < 0 {
		return invalid("Stock must be a non-negative integer")
	}

	name, err := s.images.Save(image.Filename, image.Body)
	if err != nil {
		return fmt.Errorf("failed to store image: %w", err)
	}
	food.ID = uuid.NewString()
	food.Image = name
	food.CreatedAt = time.Now()

	if err := s.foods.CreateFood(ctx, food); err != nil {
		s.dropImage(name)
		return fmt.Errorf("failed to create food: %w", err)
	}
	return nil
}

func (s *CatalogService) ListFoods(ctx context.Context) ([]domain.Food, error) {
	return s.foods.ListFoods(ctx)
}

// RemoveFood deletes the item and its stored image.
func (s *CatalogService) RemoveFood(ctx context.Context, id string) error {
	food, err := s.foods.GetFood(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrFoodNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load food: %w", err)
	}

	rows, err := s.foods.DeleteFood(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete food: %w", err)
	}
	if rows == 0 {
		return ErrFoodNotFound
	}
	s.dropImage(food.Image)
	return nil
}

func (s *CatalogService) UpdateStock(ctx context.Context, id string, stock int) (*domain.Food, error) {
	if id == "" || stock < 0 {
		return nil, invalid("Invalid ID or stock value.")
	}
	rows, err := s.foods.UpdateFoodStock(ctx, id, stock)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}
	if rows == 0 {
		return nil, ErrFoodNotFound
	}
	return s.afterStockChange(ctx, id)
}

func (s *CatalogService) UpdateDetails(ctx context.Context, id string, details FoodDetails) (*domain.Food, error) {
	if id == "" || strings.TrimSpace(details.Category) == "" {
		return nil, invalid("Missing item ID or fields.")
	}
	if details.Stock < 0 {
		return nil, invalid("Stock must be a non-negative integer")
	}
	if details.Price < 0 {
		return nil, invalid("Price must be a valid positive number")
	}
	rows, err := s.foods.UpdateFoodDetails(ctx, id, details)
	if err != nil {
		return nil, fmt.Errorf("failed to update food: %w", err)
	}
	if rows == 0 {
		return nil, ErrFoodNotFound
	}
	return s.afterStockChange(ctx, id)
}

func (s *CatalogService) afterStockChange(ctx context.Context, id string) (*domain.Food, error) {
	food, err := s.foods.GetFood(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload food: %w", err)
	}
	if food.Stock <= s.lowStockThreshold {
		if _, err := s.LowStock(ctx); err != nil {
			log.Printf("[store-svc] low stock check failed: %v", err)
		}
	}
	return food, nil
}

// LowStock lists items with stock in (0, threshold] and logs an alert for them.
func (s *CatalogService) LowStock(ctx context.Context) ([]domain.Food, error) {
	items, err := s.foods.ListLowStock(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		log.Printf("[store-svc] low stock: %s is running low (stock: %d)", item.Name, item.Stock)
	}
	return items, nil
}

func (s *CatalogService) AddCategory(ctx context.Context, category *domain.Category, image Upload) error {
	if image.Body == nil {
		return invalid("Image is required")
	}
	if category.Name == "" || category.Description == "" {
		return invalid("Name and description are required")
	}
	exists, err := s.categories.CategoryNameExists(ctx, category.Name)
	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	if exists {
		return invalid("Category name already exists")
	}

	name, err := s.images.Save(image.Filename, image.Body)
	if err != nil {
		return fmt.Errorf("failed to store image: %w", err)
	}
	category.ID = uuid.NewString()
	category.Image = name
	category.CreatedAt = time.Now()

	if err := s.categories.CreateCategory(ctx, category); err != nil {
		s.dropImage(name)
		return fmt.Errorf("failed to create category: %w", err)
	}
	log.Printf("[store-svc] category %q added", category.Name)
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListCategories(ctx)
}

// UpdateCategory rewrites name and description and, when a new image is given,
// swaps the stored image.
func (s *CatalogService) UpdateCategory(ctx context.Context, category *domain.Category, image *Upload) (*domain.Category, error) {
	current, err := s.categories.GetCategory(ctx, category.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	updated := *current
	if category.Name != "" {
		updated.Name = category.Name
	}
	if category.Description != "" {
		updated.Description = category.Description
	}
	if image != nil && image.Body != nil {
		name, err := s.images.Save(image.Filename, image.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		updated.Image = name
	}

	rows, err := s.categories.UpdateCategory(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	if rows == 0 {
		return nil, ErrCategoryNotFound
	}
	if updated.Image != current.Image {
		s.dropImage(current.Image)
	}
	return &updated, nil
}

func (s *CatalogService) RemoveCategory(ctx context.Context, id string) error {
	category, err := s.categories.GetCategory(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCategoryNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load category: %w", err)
	}
	rows, err := s.categories.DeleteCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if rows == 0 {
		return ErrCategoryNotFound
	}
	s.dropImage(category.Image)
	return nil
}

func (s *CatalogService) dropImage(name string) {
	if name == "" {
		return
	}
	if err := s.images.Remove(name); err != nil {
		log.Printf("[store-svc] failed to delete image %s: %v", name, err)
	}
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
