package storage

import (
	"context"
	"encoding/json"
	"time"

	"foodigo/internal/domain"
)

const orderColumns = "id, user_id, items, address, amount, status, payment, is_new, payment_ref, created_at, updated_at"

func scanOrder(row scanner) (domain.Order, error) {
	var (
		order          domain.Order
		items, address []byte
	)
	if err := row.Scan(&order.ID, &order.UserID, &items, &address, &order.Amount, &order.Status,
		&order.Payment, &order.IsNew, &order.PaymentRef, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return order, err
	}
	if err := decodeJSON(items, &order.Items); err != nil {
		return order, err
	}
	return order, decodeJSON(address, &order.Address)
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}
	address, err := json.Marshal(order.Address)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, items, address, amount, status, payment, is_new, payment_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		order.ID, order.UserID, string(items), string(address), order.Amount, order.Status,
		order.Payment, order.IsNew, order.PaymentRef, order.CreatedAt, order.UpdatedAt)
	return err
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) SetPaymentRef(ctx context.Context, id, ref string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET payment_ref = $1, updated_at = NOW() WHERE id = $2", ref, id)
	return err
}

func (r *PostgresRepository) MarkPaid(ctx context.Context, id string) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx,
		"UPDATE orders SET payment = TRUE, updated_at = NOW() WHERE id = $1", id))
}

func (r *PostgresRepository) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.queryOrders(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
}

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return r.queryOrders(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY created_at DESC")
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx,
		"UPDATE orders SET status = $1, is_new = FALSE, updated_at = NOW() WHERE id = $2", status, id))
}

func (r *PostgresRepository) MarkOrderSeen(ctx context.Context, id string) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx,
		"UPDATE orders SET is_new = FALSE, updated_at = NOW() WHERE id = $1", id))
}

// CountNewOrders counts paid orders the console has not opened yet.
func (r *PostgresRepository) CountNewOrders(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM orders WHERE payment = TRUE AND is_new = TRUE").Scan(&count)
	return count, err
}

func (r *PostgresRepository) DeleteOrder(ctx context.Context, id string) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id))
}

func (r *PostgresRepository) DeleteUnpaidBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return rowsAffected(r.DB.ExecContext(ctx,
		"DELETE FROM orders WHERE payment = FALSE AND created_at < $1", cutoff))
}

func (r *PostgresRepository) ListOrderItems(ctx context.Context) ([][]domain.OrderItem, error) {
	return r.queryItemLists(ctx, "SELECT items FROM orders ORDER BY created_at")
}

func (r *PostgresRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) queryItemLists(ctx context.Context, query string) ([][]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists [][]domain.OrderItem
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var items []domain.OrderItem
		if err := decodeJSON(raw, &items); err != nil {
			return nil, err
		}
		lists = append(lists, items)
	}
	return lists, rows.Err()
}
