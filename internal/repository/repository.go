package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"marketplace-backend/internal/entity"
)

// ErrNotFound is returned when no aggregate exists for the given id.
var ErrNotFound = errors.New("aggregate not found")

// ErrVersionConflict is returned when a save races with a concurrent
// writer. Callers should reload the aggregate and retry the operation.
var ErrVersionConflict = errors.New("aggregate version conflict")

// OrderRepository handles persistence for Orders.
type OrderRepository interface {
	Load(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Save(ctx context.Context, order *entity.Order) error
}

// PaymentRepository handles persistence for Payments.
type PaymentRepository interface {
	Load(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	Save(ctx context.Context, payment *entity.Payment) error
}

// ProductRepository handles persistence for Products.
type ProductRepository interface {
	Load(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Save(ctx context.Context, product *entity.Product) error
}

// VendorRepository handles persistence for Vendors.
type VendorRepository interface {
	Load(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	Save(ctx context.Context, vendor *entity.Vendor) error
}
