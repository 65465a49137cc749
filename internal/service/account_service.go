package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"foodigo/internal/auth"
	"foodigo/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type AccountService struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewAccountService(users UserRepository, tokens TokenIssuer) *AccountService {
	return &AccountService{users: users, tokens: tokens}
}

func (s *AccountService) Register(ctx context.Context, name, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return "", invalid("Name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", invalid("Please enter a valid email")
	}
	if len(password) < minPasswordLength {
		return "", invalid("Please enter a strong password")
	}

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return "", invalid("User already exists")
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CartData:     map[string]int{},
		Favorites:    []string{},
		CreatedAt:    time.Now(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return s.tokens.Issue(user.ID, auth.RoleUser)
}

func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.ID, auth.RoleUser)
}

func (s *AccountService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	admin, err := s.users.GetAdminByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrAdminNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up admin: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(admin.ID, auth.RoleAdmin)
}

// EnsureAdmin creates the console account if no admin with that email exists.
func (s *AccountService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := s.users.GetAdminByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	admin := &domain.Admin{ID: uuid.NewString(), Email: email, PasswordHash: string(hash)}
	if err := s.users.CreateAdmin(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	log.Printf("[store-svc] seeded admin account %s", email)
	return nil
}

var _ AccountServiceInterface = (*AccountService)(nil)
