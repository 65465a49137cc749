package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"foodigo/internal/service"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS foods (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10, 2) NOT NULL,
			category TEXT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			stock INTEGER NOT NULL DEFAULT 0,
			avg_rating NUMERIC(3, 2) NOT NULL DEFAULT 0,
			review_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			cart_data JSONB NOT NULL DEFAULT '{}',
			favorites TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			items JSONB NOT NULL,
			address JSONB NOT NULL,
			amount NUMERIC(10, 2) NOT NULL,
			status TEXT NOT NULL,
			payment BOOLEAN NOT NULL DEFAULT FALSE,
			is_new BOOLEAN NOT NULL DEFAULT TRUE,
			payment_ref TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS schedules (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			items JSONB NOT NULL,
			address JSONB NOT NULL,
			amount NUMERIC(10, 2) NOT NULL,
			schedule_type TEXT NOT NULL,
			delivery_timestamp TIMESTAMPTZ NOT NULL,
			recurrence_rule TEXT NOT NULL DEFAULT '',
			update_cutoff_hours INTEGER NOT NULL DEFAULT 2,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			stripe_payment_method_id TEXT NOT NULL,
			stripe_customer_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id TEXT PRIMARY KEY,
			food_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			user_name TEXT NOT NULL,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			replies JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS idx_orders_user ON orders (user_id)",
		"CREATE INDEX IF NOT EXISTS idx_schedules_due ON schedules (is_active, delivery_timestamp)",
		"CREATE INDEX IF NOT EXISTS idx_reviews_food ON reviews (food_id)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func rowsAffected(result sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func decodeJSON(raw []byte, dest any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

var (
	_ service.FoodRepository     = (*PostgresRepository)(nil)
	_ service.CategoryRepository = (*PostgresRepository)(nil)
	_ service.UserRepository     = (*PostgresRepository)(nil)
	_ service.OrderRepository    = (*PostgresRepository)(nil)
	_ service.ScheduleRepository = (*PostgresRepository)(nil)
	_ service.ReviewRepository   = (*PostgresRepository)(nil)
	_ service.MessageRepository  = (*PostgresRepository)(nil)
	_ service.ReviewCache        = (*RedisCache)(nil)
	_ service.EventPublisher     = (*KafkaPublisher)(nil)
	_ service.StatsStore         = (*Store)(nil)
	_ service.ImageStore         = (*DiskImageStore)(nil)
)
