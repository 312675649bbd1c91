package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/marketflowhq/marketflow/internal/database"
	"github.com/marketflowhq/marketflow/internal/models"
)

// PostgresSnapshot persists the collection as a single-row snapshot table:
// the same keyed-record layout as the other backends, just in Postgres.
type PostgresSnapshot struct {
	db *database.DB
}

// NewPostgresSnapshot creates a Postgres-backed snapshot. The snapshot table
// is created by the migrations run during database.Initialize.
func NewPostgresSnapshot(db *database.DB) *PostgresSnapshot {
	return &PostgresSnapshot{db: db}
}

// Load reads the snapshot row. A missing row is an empty collection.
func (ps *PostgresSnapshot) Load(ctx context.Context) ([]models.Campaign, error) {
	query := `SELECT data FROM campaign_snapshot WHERE id = 1`

	var data []byte
	err := ps.db.QueryRowContext(ctx, query).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read campaign snapshot: %w", err)
	}

	var campaigns []models.Campaign
	if err := json.Unmarshal(data, &campaigns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign snapshot: %w", err)
	}
	return campaigns, nil
}

// Save upserts the snapshot row with the full collection.
func (ps *PostgresSnapshot) Save(ctx context.Context, campaigns []models.Campaign) error {
	data, err := json.Marshal(campaigns)
	if err != nil {
		return fmt.Errorf("failed to marshal campaign snapshot: %w", err)
	}

	query := `
		INSERT INTO campaign_snapshot (id, data, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`
	if _, err := ps.db.ExecContext(ctx, query, data); err != nil {
		return fmt.Errorf("failed to write campaign snapshot: %w", err)
	}
	return nil
}
