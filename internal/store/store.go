package store

import (
	"context"
	"sync"

	"github.com/go-kit/log"
	"github.com/marketflowhq/marketflow/internal/models"
)

// Store is the authoritative campaign collection: an in-memory ordered slice
// (most recent first) snapshotted to a persistence backend after every
// mutation. Persistence is best-effort: a failed save is logged and never
// surfaced, and a corrupt or missing snapshot loads as an empty collection.
type Store struct {
	mu        sync.RWMutex
	campaigns []models.Campaign
	snapshot  Snapshot
	logger    log.Logger
}

// New creates a store backed by the given snapshot, loading the persisted
// collection once at startup.
func New(snapshot Snapshot, logger log.Logger) *Store {
	s := &Store{
		snapshot: snapshot,
		logger:   logger,
	}
	s.load()
	return s
}

func (s *Store) load() {
	campaigns, err := s.snapshot.Load(context.Background())
	if err != nil {
		s.logger.Log("msg", "failed to load campaign snapshot, starting empty", "err", err)
		return
	}
	s.campaigns = campaigns
}

// Insert adds a campaign at the head of the ordering.
func (s *Store) Insert(ctx context.Context, c models.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns = append([]models.Campaign{c}, s.campaigns...)
	s.persist(ctx)
}

// UpdateVisuals sets the visuals field of the campaign with the given id,
// leaving every other field untouched. Returns false when the id is not in
// the persisted collection (sample ids land here and stay a no-op).
func (s *Store) UpdateVisuals(ctx context.Context, id string, visuals models.CampaignVisuals) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			s.campaigns[i].Visuals = &visuals
			s.persist(ctx)
			return true
		}
	}
	return false
}

// DeleteByID removes a campaign. Unknown ids, including sample ids, are a
// no-op and return false.
func (s *Store) DeleteByID(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			s.campaigns = append(s.campaigns[:i], s.campaigns[i+1:]...)
			s.persist(ctx)
			return true
		}
	}
	return false
}

// List returns the persisted collection in insertion order, most recent
// first.
func (s *Store) List(ctx context.Context) []models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Campaign, len(s.campaigns))
	copy(out, s.campaigns)
	return out
}

// MergedView returns the persisted campaigns, optionally followed by the
// read-only sample dataset. Persisted campaigns always come first; neither
// source is mutated.
func (s *Store) MergedView(ctx context.Context, showSamples bool) []models.Campaign {
	merged := s.List(ctx)
	if showSamples {
		merged = append(merged, SampleCampaigns()...)
	}
	return merged
}

// persist writes the snapshot; callers hold the write lock so readers never
// observe a partially applied mutation.
func (s *Store) persist(ctx context.Context) {
	if err := s.snapshot.Save(ctx, s.campaigns); err != nil {
		s.logger.Log("msg", "failed to save campaign snapshot", "err", err)
	}
}
