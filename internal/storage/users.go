package storage

import (
	"context"
	"encoding/json"

	"foodigo/internal/domain"

	"github.com/lib/pq"
)

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	cart, err := json.Marshal(user.CartData)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, cart_data, favorites, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Name, user.Email, user.PasswordHash, string(cart), pq.Array(user.Favorites), user.CreatedAt)
	return err
}

func (r *PostgresRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return r.getUser(ctx, "id", id)
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, "email", email)
}

func (r *PostgresRepository) getUser(ctx context.Context, column, value string) (*domain.User, error) {
	var (
		user domain.User
		cart []byte
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, cart_data, favorites, created_at
		FROM users WHERE `+column+` = $1`, value).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &cart, pq.Array(&user.Favorites), &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	user.CartData = map[string]int{}
	if err := decodeJSON(cart, &user.CartData); err != nil {
		return nil, err
	}
	if user.Favorites == nil {
		user.Favorites = []string{}
	}
	return &user, nil
}

func (r *PostgresRepository) GetUserSummaries(ctx context.Context, ids []string) (map[string]domain.UserSummary, error) {
	summaries := make(map[string]domain.UserSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, email FROM users WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.UserSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email); err != nil {
			return nil, err
		}
		summaries[s.ID] = s
	}
	return summaries, rows.Err()
}

func (r *PostgresRepository) SaveCart(ctx context.Context, userID string, cart map[string]int) (int64, error) {
	payload, err := json.Marshal(cart)
	if err != nil {
		return 0, err
	}
	return rowsAffected(r.DB.ExecContext(ctx, "UPDATE users SET cart_data = $1 WHERE id = $2", string(payload), userID))
}

func (r *PostgresRepository) ClearCart(ctx context.Context, userID string) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx, "UPDATE users SET cart_data = '{}' WHERE id = $1", userID))
}

func (r *PostgresRepository) SaveFavorites(ctx context.Context, userID string, favorites []string) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx,
		"UPDATE users SET favorites = $1 WHERE id = $2", pq.Array(favorites), userID))
}

func (r *PostgresRepository) CreateAdmin(ctx context.Context, admin *domain.Admin) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO admins (id, email, password_hash) VALUES ($1, $2, $3)",
		admin.ID, admin.Email, admin.PasswordHash)
	return err
}

func (r *PostgresRepository) GetAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, email, password_hash FROM admins WHERE email = $1", email).
		Scan(&admin.ID, &admin.Email, &admin.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
