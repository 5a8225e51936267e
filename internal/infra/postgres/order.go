package postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"course-booking-api/internal/domain/order"
	"course-booking-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type orderItemRow struct {
	LessonID int64   `json:"lesson_id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int32   `json:"quantity"`
}

type OrderRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewOrderRepository(pool *pgxpool.Pool, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{pool: pool, logger: logger}
}

func (r *OrderRepository) Append(ctx context.Context, o *order.Order) error {
	items := o.Items()
	rows := make([]orderItemRow, len(items))
	for i, it := range items {
		rows[i] = orderItemRow(it)
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to encode order items", err)
	}

	const sql = `
		INSERT INTO orders (id, name, phone, items, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.pool.Exec(ctx, sql, o.ID(), o.Name(), o.Phone(), payload, o.Total(), o.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert order", err)
	}

	return nil
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	const sql = `
		SELECT id, name, phone, items, total, created_at
		FROM orders
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query orders", err)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			phone     string
			payload   []byte
			total     float64
			createdAt time.Time
		)
		if err := rows.Scan(&id, &name, &phone, &payload, &total, &createdAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan order", err)
		}

		var itemRows []orderItemRow
		if err := json.Unmarshal(payload, &itemRows); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode order items", err)
		}
		items := make([]order.LineItem, len(itemRows))
		for i, it := range itemRows {
			items[i] = order.LineItem(it)
		}

		orders = append(orders, order.ReconstructOrder(id, name, phone, items, total, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read orders", err)
	}

	return orders, nil
}
