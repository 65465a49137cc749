package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodigo/internal/domain"
)

// CartService mutates the per-user cart mapping. Concurrent writers race with
// last-write-wins.
type CartService struct {
	users UserRepository
}

func NewCartService(users UserRepository) *CartService {
	return &CartService{users: users}
}

func (s *CartService) Add(ctx context.Context, userID, itemID string) (map[string]int, error) {
	if itemID == "" {
		return nil, invalid("Item ID is required")
	}
	user, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	cart := copyCart(user.CartData)
	cart[itemID]++
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Remove(ctx context.Context, userID, itemID string) (map[string]int, error) {
	if itemID == "" {
		return nil, invalid("Item ID is required")
	}
	user, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	cart := copyCart(user.CartData)
	if cart[itemID] <= 0 {
		return nil, ErrNotInCart
	}
	cart[itemID]--
	if cart[itemID] == 0 {
		delete(cart, itemID)
	}
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Get(ctx context.Context, userID string) (map[string]int, error) {
	user, err := loadUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}
	return copyCart(user.CartData), nil
}

func (s *CartService) save(ctx context.Context, userID string, cart map[string]int) error {
	rows, err := s.users.SaveCart(ctx, userID, cart)
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func copyCart(src map[string]int) map[string]int {
	cart := make(map[string]int, len(src))
	for id, qty := range src {
		if qty > 0 {
			cart[id] = qty
		}
	}
	return cart
}

func loadUser(ctx context.Context, users UserRepository, userID string) (*domain.User, error) {
	user, err := users.GetUser(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

var _ CartServiceInterface = (*CartService)(nil)
