package service

import (
	"context"
	"fmt"
)

const (
	FavoriteAdded   = "add"
	FavoriteRemoved = "remove"
)

type FavoritesService struct {
	users UserRepository
}

func NewFavoritesService(users UserRepository) *FavoritesService {
	return &FavoritesService{users: users}
}

// Toggle flips membership of itemID and reports which way it went.
func (s *FavoritesService) Toggle(ctx context.Context, userID, itemID string) (string, error) {
	if itemID == "" {
		return "", invalid("Item ID is required")
	}
	user, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return "", err
	}

	action := FavoriteAdded
	favorites := make([]string, 0, len(user.Favorites)+1)
	for _, id := range user.Favorites {
		if id == itemID {
			action = FavoriteRemoved
			continue
		}
		favorites = append(favorites, id)
	}
	if action == FavoriteAdded {
		favorites = append(favorites, itemID)
	}

	rows, err := s.users.SaveFavorites(ctx, userID, favorites)
	if err != nil {
		return "", fmt.Errorf("failed to save favorites: %w", err)
	}
	if rows == 0 {
		return "", ErrUserNotFound
	}
	return action, nil
}

func (s *FavoritesService) Get(ctx context.Context, userID string) ([]string, error) {
	user, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	if user.Favorites == nil {
		return []string{}, nil
	}
	return user.Favorites, nil
}

var _ FavoritesServiceInterface = (*FavoritesService)(nil)
