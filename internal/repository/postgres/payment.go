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

type paymentRepository struct {
	store *snapshotStore
}

// NewPaymentRepository creates a new PaymentRepository backed by Postgres.
func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{store: newSnapshotStore(db, "payment")}
}

func (r *paymentRepository) Load(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	data, version, err := r.store.load(ctx, id)
	if err != nil {
		return nil, err
	}

	var payment entity.Payment
	if err := json.Unmarshal(data, &payment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment %s: %w", id, err)
	}
	payment.Version = version
	return &payment, nil
}

func (r *paymentRepository) Save(ctx context.Context, payment *entity.Payment) error {
	data, err := json.Marshal(payment)
	if err != nil {
		return fmt.Errorf("failed to marshal payment %s: %w", payment.ID, err)
	}
	if err := r.store.save(ctx, payment.ID, payment.Version, data); err != nil {
		return err
	}
	payment.Version++
	return nil
}
