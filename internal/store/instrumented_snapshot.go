package store

import (
	"context"

	"github.com/marketflowhq/marketflow/internal/metrics"
	"github.com/marketflowhq/marketflow/internal/models"
)

// InstrumentedSnapshot wraps a snapshot backend with metrics collection
type InstrumentedSnapshot struct {
	next    Snapshot
	metrics *metrics.Metrics
}

// NewInstrumentedSnapshot creates a new instrumented snapshot
func NewInstrumentedSnapshot(next Snapshot, m *metrics.Metrics) Snapshot {
	return &InstrumentedSnapshot{
		next:    next,
		metrics: m,
	}
}

// Load implements Snapshot with metrics
func (s *InstrumentedSnapshot) Load(ctx context.Context) ([]models.Campaign, error) {
	campaigns, err := s.next.Load(ctx)
	s.metrics.RecordSnapshotOperation("load", outcomeLabel(err))
	return campaigns, err
}

// Save implements Snapshot with metrics
func (s *InstrumentedSnapshot) Save(ctx context.Context, campaigns []models.Campaign) error {
	err := s.next.Save(ctx, campaigns)
	s.metrics.RecordSnapshotOperation("save", outcomeLabel(err))
	return err
}

func outcomeLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
