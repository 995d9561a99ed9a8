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

type vendorRepository struct {
	store *snapshotStore
}

// NewVendorRepository creates a new VendorRepository backed by Postgres.
func NewVendorRepository(db *sql.DB) repository.VendorRepository {
	return &vendorRepository{store: newSnapshotStore(db, "vendor")}
}

func (r *vendorRepository) Load(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	data, version, err := r.store.load(ctx, id)
	if err != nil {
		return nil, err
	}

	var vendor entity.Vendor
	if err := json.Unmarshal(data, &vendor); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vendor %s: %w", id, err)
	}
	vendor.Version = version
	return &vendor, nil
}

func (r *vendorRepository) Save(ctx context.Context, vendor *entity.Vendor) error {
	data, err := json.Marshal(vendor)
	if err != nil {
		return fmt.Errorf("failed to marshal vendor %s: %w", vendor.ID, err)
	}
	if err := r.store.save(ctx, vendor.ID, vendor.Version, data); err != nil {
		return err
	}
	vendor.Version++
	return nil
}
