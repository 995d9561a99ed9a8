package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"marketplace-backend/internal/entity"
	"marketplace-backend/internal/repository"
)

type orderRepository struct {
	store *snapshotStore
}

// NewOrderRepository creates a new OrderRepository backed by Postgres.
func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{store: newSnapshotStore(db, "order")}
}

func (r *orderRepository) Load(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	data, version, err := r.store.load(ctx, id)
	if err != nil {
		return nil, err
	}

	var order entity.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order %s: %w", id, err)
	}
	order.Version = version
	return &order, nil
}

func (r *orderRepository) Save(ctx context.Context, order *entity.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order %s: %w", order.ID, err)
	}
	if err := r.store.save(ctx, order.ID, order.Version, data); err != nil {
		return err
	}
	order.Version++
	return nil
}
