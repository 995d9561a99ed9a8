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

type productRepository struct {
	store *snapshotStore
}

// NewProductRepository creates a new ProductRepository backed by Postgres.
func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{store: newSnapshotStore(db, "product")}
}

func (r *productRepository) Load(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	data, version, err := r.store.load(ctx, id)
	if err != nil {
		return nil, err
	}

	var product entity.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product %s: %w", id, err)
	}
	product.Version = version
	return &product, nil
}

func (r *productRepository) Save(ctx context.Context, product *entity.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product %s: %w", product.ID, err)
	}
	if err := r.store.save(ctx, product.ID, product.Version, data); err != nil {
		return err
	}
	product.Version++
	return nil
}
