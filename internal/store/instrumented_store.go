package store

import (
	"context"

	"github.com/marketflowhq/marketflow/internal/metrics"
	"github.com/marketflowhq/marketflow/internal/models"
	"github.com/marketflowhq/marketflow/internal/service"
)

// InstrumentedStore wraps a store with metrics collection
type InstrumentedStore struct {
	next    service.CampaignStore
	metrics *metrics.Metrics
}

// NewInstrumentedStore creates a new instrumented store
func NewInstrumentedStore(next service.CampaignStore, metrics *metrics.Metrics) service.CampaignStore {
	return &InstrumentedStore{
		next:    next,
		metrics: metrics,
	}
}

// Insert implements service.CampaignStore with metrics
func (s *InstrumentedStore) Insert(ctx context.Context, c models.Campaign) {
	s.metrics.RecordStoreOperation("insert")
	s.next.Insert(ctx, c)
}

// UpdateVisuals implements service.CampaignStore with metrics
func (s *InstrumentedStore) UpdateVisuals(ctx context.Context, id string, visuals models.CampaignVisuals) bool {
	s.metrics.RecordStoreOperation("update_visuals")
	return s.next.UpdateVisuals(ctx, id, visuals)
}

// DeleteByID implements service.CampaignStore with metrics
func (s *InstrumentedStore) DeleteByID(ctx context.Context, id string) bool {
	s.metrics.RecordStoreOperation("delete")
	return s.next.DeleteByID(ctx, id)
}

// List implements service.CampaignStore with metrics
func (s *InstrumentedStore) List(ctx context.Context) []models.Campaign {
	s.metrics.RecordStoreOperation("list")
	return s.next.List(ctx)
}

// MergedView implements service.CampaignStore with metrics
func (s *InstrumentedStore) MergedView(ctx context.Context, showSamples bool) []models.Campaign {
	s.metrics.RecordStoreOperation("merged_view")
	return s.next.MergedView(ctx, showSamples)
}
