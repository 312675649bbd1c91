package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/marketflowhq/marketflow/internal/models"
	"github.com/marketflowhq/marketflow/internal/navigation"
)

var (
	// ErrGenerationInFlight is returned when a generation is requested while
	// another one has not settled yet. The active-agent marker is
	// single-valued, so the two phases never interleave.
	ErrGenerationInFlight = errors.New("a generation is already in flight")

	// ErrCampaignNotFound is returned when the target campaign is absent
	// from the merged view.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrAgentFailure wraps transport-level gateway failures.
	ErrAgentFailure = errors.New("agent invocation failed")
)

// AgentGateway invokes a named agent with a natural-language instruction.
type AgentGateway interface {
	Invoke(ctx context.Context, message, agentID string) (*models.AgentEnvelope, error)
}

// CampaignStore is the authoritative persisted campaign collection.
type CampaignStore interface {
	Insert(ctx context.Context, c models.Campaign)
	UpdateVisuals(ctx context.Context, id string, visuals models.CampaignVisuals) bool
	DeleteByID(ctx context.Context, id string) bool
	List(ctx context.Context) []models.Campaign
	MergedView(ctx context.Context, showSamples bool) []models.Campaign
}

// CampaignOrchestrator drives the two-phase generation flow and owns the
// campaign lifecycle.
type CampaignOrchestrator interface {
	SubmitBrief(ctx context.Context, req models.BriefRequest) (SubmitBriefResult, error)
	GenerateVisuals(ctx context.Context, campaignID string) (*models.Campaign, error)
	ViewCampaign(ctx context.Context, id string) (*models.Campaign, error)
	ListCampaigns(ctx context.Context, includeSamples bool) []models.Campaign
	DeleteCampaign(ctx context.Context, id string)
	Agents() []AgentInfo
	ActiveAgent() string
	Navigation() (navigation.Screen, string)
}

// SubmitBriefResult is the outcome of a brief submission. SavedAsDraft is
// the partial-failure signal: the gateway answered but the payload could not
// be normalized, so the campaign was retained without content.
type SubmitBriefResult struct {
	Campaign     models.Campaign `json:"campaign"`
	SavedAsDraft bool            `json:"saved_as_draft"`
}

// AgentInfo describes one of the configured agents for the status panel.
type AgentInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

// Config holds the orchestrator's agent identifiers. They are opaque
// configuration constants, not business logic.
type Config struct {
	ContentAgentID string
	VisualAgentID  string
}

// Orchestrator is the default CampaignOrchestrator implementation.
type Orchestrator struct {
	store   CampaignStore
	gateway AgentGateway
	nav     *navigation.Navigator
	cfg     Config

	mu          sync.Mutex
	activeAgent string
}

// NewOrchestrator creates a campaign orchestrator.
func NewOrchestrator(store CampaignStore, gateway AgentGateway, nav *navigation.Navigator, cfg Config) *Orchestrator {
	return &Orchestrator{
		store:   store,
		gateway: gateway,
		nav:     nav,
		cfg:     cfg,
	}
}

// SubmitBrief validates the brief, runs content generation and commits the
// resulting campaign. On gateway failure no campaign is created; on an
// unparseable payload the campaign is retained as a draft.
func (o *Orchestrator) SubmitBrief(ctx context.Context, req models.BriefRequest) (SubmitBriefResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return SubmitBriefResult{}, err
	}

	if err := o.acquireAgent(o.cfg.ContentAgentID); err != nil {
		return SubmitBriefResult{}, err
	}
	defer o.releaseAgent()

	envelope, err := o.gateway.Invoke(ctx, ContentPrompt(req), o.cfg.ContentAgentID)
	if err != nil {
		return SubmitBriefResult{}, fmt.Errorf("%w: %v", ErrAgentFailure, err)
	}

	content := models.BuildContent(models.NormalizePayload(envelope))

	campaign := models.Campaign{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Date:      models.FormatDisplayDate(time.Now()),
		Platforms: req.Platforms,
		Status:    models.StatusComplete,
		Tone:      req.Tone,
		Brief:     req.ToBrief(),
		Content:   content,
	}
	if content == nil {
		campaign.Status = models.StatusDraft
	}

	o.store.Insert(ctx, campaign)
	o.nav.ShowCampaign(campaign.ID)

	return SubmitBriefResult{
		Campaign:     campaign,
		SavedAsDraft: content == nil,
	}, nil
}

// GenerateVisuals runs the second-phase visual generation for an existing
// campaign and merges the result into its visuals field only. Updating a
// sample campaign is a no-op against the persisted store: the generated
// visuals are returned to the caller but not retained.
func (o *Orchestrator) GenerateVisuals(ctx context.Context, campaignID string) (*models.Campaign, error) {
	target := o.findCampaign(ctx, campaignID, true)
	if target == nil {
		return nil, ErrCampaignNotFound
	}

	if err := o.acquireAgent(o.cfg.VisualAgentID); err != nil {
		return nil, err
	}
	defer o.releaseAgent()

	envelope, err := o.gateway.Invoke(ctx, VisualsPrompt(*target), o.cfg.VisualAgentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAgentFailure, err)
	}

	visuals := models.CampaignVisuals{
		Data:   models.BuildVisualConcepts(models.NormalizePayload(envelope)),
		Images: envelope.ArtifactImages(),
	}

	o.store.UpdateVisuals(ctx, campaignID, visuals)

	target.Visuals = &visuals
	return target, nil
}

// ViewCampaign looks up a campaign in the merged view and navigates to it.
func (o *Orchestrator) ViewCampaign(ctx context.Context, id string) (*models.Campaign, error) {
	target := o.findCampaign(ctx, id, true)
	if target == nil {
		return nil, ErrCampaignNotFound
	}
	o.nav.ShowCampaign(id)
	return target, nil
}

// ListCampaigns returns the merged view, persisted campaigns first.
func (o *Orchestrator) ListCampaigns(ctx context.Context, includeSamples bool) []models.Campaign {
	return o.store.MergedView(ctx, includeSamples)
}

// DeleteCampaign removes a persisted campaign. Sample ids are a no-op.
// Deleting the currently-viewed campaign resets navigation to the dashboard.
func (o *Orchestrator) DeleteCampaign(ctx context.Context, id string) {
	o.store.DeleteByID(ctx, id)
	if _, active := o.nav.Current(); active == id {
		o.nav.Reset()
	}
}

// Agents returns the configured agent roster for the status panel.
func (o *Orchestrator) Agents() []AgentInfo {
	return []AgentInfo{
		{
			ID:      o.cfg.ContentAgentID,
			Name:    "Content Creation Manager",
			Purpose: "Generates reels scripts, meta ads, and landing page copy",
		},
		{
			ID:      o.cfg.VisualAgentID,
			Name:    "Reel Visual Concept Agent",
			Purpose: "Creates mood boards, visual direction, and AI images",
		},
	}
}

// ActiveAgent returns the id of the agent currently generating, or the
// empty string when idle.
func (o *Orchestrator) ActiveAgent() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.activeAgent
}

// Navigation returns the current screen and active campaign id.
func (o *Orchestrator) Navigation() (navigation.Screen, string) {
	return o.nav.Current()
}

func (o *Orchestrator) findCampaign(ctx context.Context, id string, includeSamples bool) *models.Campaign {
	for _, c := range o.store.MergedView(ctx, includeSamples) {
		if c.ID == id {
			found := c
			return &found
		}
	}
	return nil
}

func (o *Orchestrator) acquireAgent(agentID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.activeAgent != "" {
		return ErrGenerationInFlight
	}
	o.activeAgent = agentID
	return nil
}

func (o *Orchestrator) releaseAgent() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.activeAgent = ""
}
