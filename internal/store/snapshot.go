package store

import (
	"context"

	"github.com/marketflowhq/marketflow/internal/models"
)

// Snapshot persists the campaign collection as a single keyed record holding
// the JSON-serialized ordered sequence. Loaded once at startup, rewritten
// after every store mutation.
type Snapshot interface {
	Load(ctx context.Context) ([]models.Campaign, error)
	Save(ctx context.Context, campaigns []models.Campaign) error
}
