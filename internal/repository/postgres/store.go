package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"marketplace-backend/internal/repository"
)

// snapshotStore persists aggregates as versioned JSON snapshots with an
// optimistic concurrency check on the expected version.
type snapshotStore struct {
	db            *sql.DB
	aggregateType string
}

func newSnapshotStore(db *sql.DB, aggregateType string) *snapshotStore {
	return &snapshotStore{db: db, aggregateType: aggregateType}
}

func (s *snapshotStore) load(ctx context.Context, id uuid.UUID) ([]byte, int, error) {
	var data []byte
	var version int
	err := s.db.QueryRowContext(ctx,
		"SELECT data, version FROM aggregates WHERE id = $1 AND aggregate_type = $2",
		id.String(), s.aggregateType,
	).Scan(&data, &version)
	if err == sql.ErrNoRows {
		return nil, 0, repository.ErrNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load %s %s: %w", s.aggregateType, id, err)
	}
	return data, version, nil
}

// save inserts on version 0, otherwise updates only when the stored
// version still matches the expected one.
func (s *snapshotStore) save(ctx context.Context, id uuid.UUID, expectedVersion int, data []byte) error {
	if expectedVersion == 0 {
		res, err := s.db.ExecContext(ctx,
			"INSERT INTO aggregates (id, aggregate_type, version, data) VALUES ($1, $2, 1, $3) ON CONFLICT (id, aggregate_type) DO NOTHING",
			id.String(), s.aggregateType, data,
		)
		if err != nil {
			return fmt.Errorf("failed to insert %s %s: %w", s.aggregateType, id, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read insert result for %s %s: %w", s.aggregateType, id, err)
		}
		if affected == 0 {
			return repository.ErrVersionConflict
		}
		return nil
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE aggregates SET version = version + 1, data = $1, updated_at = NOW() WHERE id = $2 AND aggregate_type = $3 AND version = $4",
		data, id.String(), s.aggregateType, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", s.aggregateType, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result for %s %s: %w", s.aggregateType, id, err)
	}
	if affected == 0 {
		return repository.ErrVersionConflict
	}
	return nil
}
