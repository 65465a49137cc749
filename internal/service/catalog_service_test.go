package service_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"foodigo/internal/domain"
	"foodigo/internal/mocks"
	"foodigo/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogDeps struct {
	foods      *mocks.FoodRepository
	categories *mocks.CategoryRepository
	images     *mocks.ImageStore
}

func newCatalogService(t *testing.T) (*service.CatalogService, catalogDeps) {
	deps := catalogDeps{
		foods:      mocks.NewFoodRepository(t),
		categories: mocks.NewCategoryRepository(t),
		images:     mocks.NewImageStore(t),
	}
	return service.NewCatalogService(deps.foods, deps.categories, deps.images, 10), deps
}

func TestCatalogService_AddFood(t *testing.T) {
	tests := []struct {
		name      string
		food      domain.Food
		image     service.Upload
		setup     func(catalogDeps)
		wantValid bool
		wantErr   bool
	}{
		{
			name:  "stored",
			food:  domain.Food{Name: "Burger", Description: "Beef", Category: "Mains", Price: 10, Stock: 5},
			image: service.Upload{Filename: "burger.png", Body: strings.NewReader("png")},
			setup: func(d catalogDeps) {
				d.images.On("Save", "burger.png", mock.Anything).Return("abc_burger.png", nil).Once()
				d.foods.On("CreateFood", mock.Anything, mock.MatchedBy(func(f *domain.Food) bool {
					return f.Image == "abc_burger.png" && f.ID != ""
				})).Return(nil).Once()
			},
		},
		{
			name:      "missing image",
			food:      domain.Food{Name: "Burger", Description: "Beef", Category: "Mains", Price: 10},
			setup:     func(catalogDeps) {},
			wantValid: true,
		},
		{
			name:      "negative stock",
			food:      domain.Food{Name: "Burger", Description: "Beef", Category: "Mains", Price: 10, Stock: -1},
			image:     service.Upload{Filename: "burger.png", Body: strings.NewReader("png")},
			setup:     func(catalogDeps) {},
			wantValid: true,
		},
		{
			name:  "database failure removes image",
			food:  domain.Food{Name: "Burger", Description: "Beef", Category: "Mains", Price: 10},
			image: service.Upload{Filename: "burger.png", Body: strings.NewReader("png")},
			setup: func(d catalogDeps) {
				d.images.On("Save", "burger.png", mock.Anything).Return("abc_burger.png", nil).Once()
				d.foods.On("CreateFood", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
				d.images.On("Remove", "abc_burger.png").Return(nil).Once()
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newCatalogService(t)
			testCase.setup(deps)

			food := testCase.food
			err := svc.AddFood(context.Background(), &food, testCase.image)
			switch {
			case testCase.wantValid:
				assert.True(t, service.IsValidation(err), "got %v", err)
			case testCase.wantErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogService_RemoveFood(t *testing.T) {
	t.Run("deletes row and image", func(t *testing.T) {
		svc, deps := newCatalogService(t)
		deps.foods.On("GetFood", mock.Anything, "f1").Return(&domain.Food{ID: "f1", Image: "burger.png"}, nil).Once()
		deps.foods.On("DeleteFood", mock.Anything, "f1").Return(int64(1), nil).Once()
		deps.images.On("Remove", "burger.png").Return(nil).Once()

		assert.NoError(t, svc.RemoveFood(context.Background(), "f1"))
	})

	t.Run("unknown food", func(t *testing.T) {
		svc, deps := newCatalogService(t)
		deps.foods.On("GetFood", mock.Anything, "nope").Return(nil, sql.ErrNoRows).Once()

		assert.ErrorIs(t, svc.RemoveFood(context.Background(), "nope"), service.ErrFoodNotFound)
	})
}

func TestCatalogService_UpdateStock(t *testing.T) {
	t.Run("low stock triggers alert scan", func(t *testing.T) {
		svc, deps := newCatalogService(t)
		deps.foods.On("UpdateFoodStock", mock.Anything, "f1", 3).Return(int64(1), nil).Once()
		deps.foods.On("GetFood", mock.Anything, "f1").Return(&domain.Food{ID: "f1", Name: "Burger", Stock: 3}, nil).Once()
		deps.foods.On("ListLowStock", mock.Anything, 10).Return([]domain.Food{{ID: "f1", Name: "Burger", Stock: 3}}, nil).Once()

		food, err := svc.UpdateStock(context.Background(), "f1", 3)
		require.NoError(t, err)
		assert.Equal(t, 3, food.Stock)
	})

	t.Run("healthy stock skips scan", func(t *testing.T) {
		svc, deps := newCatalogService(t)
		deps.foods.On("UpdateFoodStock", mock.Anything, "f1", 50).Return(int64(1), nil).Once()
		deps.foods.On("GetFood", mock.Anything, "f1").Return(&domain.Food{ID: "f1", Stock: 50}, nil).Once()

		_, err := svc.UpdateStock(context.Background(), "f1", 50)
		require.NoError(t, err)
		deps.foods.AssertNotCalled(t, "ListLowStock", mock.Anything, mock.Anything)
	})

	t.Run("negative stock", func(t *testing.T) {
		svc, _ := newCatalogService(t)

		_, err := svc.UpdateStock(context.Background(), "f1", -2)
		assert.True(t, service.IsValidation(err))
	})

	t.Run("unknown food", func(t *testing.T) {
		svc, deps := newCatalogService(t)
		deps.foods.On("UpdateFoodStock", mock.Anything, "nope", 1).Return(int64(0), nil).Once()

		_, err := svc.UpdateStock(context.Background(), "nope", 1)
		assert.ErrorIs(t, err, service.ErrFoodNotFound)
	})
}

func TestCatalogService_UpdateDetails(t *testing.T) {
	svc, deps := newCatalogService(t)
	details := service.FoodDetails{Stock: 20, Category: "Desserts", Price: 4.5}
	deps.foods.On("UpdateFoodDetails", mock.Anything, "f1", details).Return(int64(1), nil).Once()
	deps.foods.On("GetFood", mock.Anything, "f1").Return(&domain.Food{ID: "f1", Stock: 20, Category: "Desserts", Price: 4.5}, nil).Once()

	food, err := svc.UpdateDetails(context.Background(), "f1", details)
	require.NoError(t, err)
	assert.Equal(t, "Desserts", food.Category)
}

func TestCatalogService_AddCategory(t *testing.T) {
	t.Run("duplicate name", func(t *testing.T) {
		svc, deps := newCatalogService(t)
		deps.categories.On("CategoryNameExists", mock.Anything, "Pizza").Return(true, nil).Once()

		err := svc.AddCategory(context.Background(), &domain.Category{Name: "Pizza", Description: "Round"},
			service.Upload{Filename: "p.png", Body: strings.NewReader("png")})
		assert.True(t, service.IsValidation(err))
		deps.images.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("stored", func(t *testing.T) {
		svc, deps := newCatalogService(t)
		deps.categories.On("CategoryNameExists", mock.Anything, "Pizza").Return(false, nil).Once()
		deps.images.On("Save", "p.png", mock.Anything).Return("x_p.png", nil).Once()
		deps.categories.On("CreateCategory", mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil).Once()

		category := &domain.Category{Name: "Pizza", Description: "Round"}
		err := svc.AddCategory(context.Background(), category, service.Upload{Filename: "p.png", Body: strings.NewReader("png")})
		require.NoError(t, err)
		assert.Equal(t, "x_p.png", category.Image)
	})
}

func TestCatalogService_UpdateCategory_SwapsImage(t *testing.T) {
	svc, deps := newCatalogService(t)
	deps.categories.On("GetCategory", mock.Anything, "c1").Return(&domain.Category{ID: "c1", Name: "Pizza", Description: "Round", Image: "old.png"}, nil).Once()
	deps.images.On("Save", "new.png", mock.Anything).Return("x_new.png", nil).Once()
	deps.categories.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c *domain.Category) bool {
		return c.Name == "Pizzas" && c.Description == "Round" && c.Image == "x_new.png"
	})).Return(int64(1), nil).Once()
	deps.images.On("Remove", "old.png").Return(nil).Once()

	updated, err := svc.UpdateCategory(context.Background(), &domain.Category{ID: "c1", Name: "Pizzas"},
		&service.Upload{Filename: "new.png", Body: strings.NewReader("png")})
	require.NoError(t, err)
	assert.Equal(t, "x_new.png", updated.Image)
}

func TestCatalogService_RemoveCategory(t *testing.T) {
	svc, deps := newCatalogService(t)
	deps.categories.On("GetCategory", mock.Anything, "c1").Return(&domain.Category{ID: "c1", Image: "p.png"}, nil).Once()
	deps.categories.On("DeleteCategory", mock.Anything, "c1").Return(int64(1), nil).Once()
	deps.images.On("Remove", "p.png").Return(errors.New("gone already")).Once()

	assert.NoError(t, svc.RemoveCategory(context.Background(), "c1"))
}
