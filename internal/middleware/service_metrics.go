package middleware

import (
	"context"

	"github.com/marketflowhq/marketflow/internal/metrics"
	"github.com/marketflowhq/marketflow/internal/models"
	"github.com/marketflowhq/marketflow/internal/navigation"
	"github.com/marketflowhq/marketflow/internal/service"
)

// serviceMetricsMiddleware implements metrics collection for CampaignOrchestrator
type serviceMetricsMiddleware struct {
	metrics *metrics.Metrics
	next    service.CampaignOrchestrator
}

// NewServiceMetricsMiddleware creates a new service metrics middleware
func NewServiceMetricsMiddleware(m *metrics.Metrics) func(service.CampaignOrchestrator) service.CampaignOrchestrator {
	return func(next service.CampaignOrchestrator) service.CampaignOrchestrator {
		return &serviceMetricsMiddleware{
			metrics: m,
			next:    next,
		}
	}
}

// SubmitBrief implements service.CampaignOrchestrator with business metrics
func (mw *serviceMetricsMiddleware) SubmitBrief(ctx context.Context, req models.BriefRequest) (service.SubmitBriefResult, error) {
	result, err := mw.next.SubmitBrief(ctx, req)

	switch {
	case err != nil:
		mw.metrics.RecordGeneration(metrics.PhaseContent, metrics.OutcomeFailed)
	case result.SavedAsDraft:
		mw.metrics.RecordGeneration(metrics.PhaseContent, metrics.OutcomeDraft)
	default:
		mw.metrics.RecordGeneration(metrics.PhaseContent, metrics.OutcomeComplete)
	}

	return result, err
}

// GenerateVisuals implements service.CampaignOrchestrator with business metrics
func (mw *serviceMetricsMiddleware) GenerateVisuals(ctx context.Context, campaignID string) (*models.Campaign, error) {
	campaign, err := mw.next.GenerateVisuals(ctx, campaignID)

	if err != nil {
		mw.metrics.RecordGeneration(metrics.PhaseVisuals, metrics.OutcomeFailed)
	} else {
		mw.metrics.RecordGeneration(metrics.PhaseVisuals, metrics.OutcomeComplete)
	}

	return campaign, err
}

// ViewCampaign implements service.CampaignOrchestrator
func (mw *serviceMetricsMiddleware) ViewCampaign(ctx context.Context, id string) (*models.Campaign, error) {
	return mw.next.ViewCampaign(ctx, id)
}

// ListCampaigns implements service.CampaignOrchestrator
func (mw *serviceMetricsMiddleware) ListCampaigns(ctx context.Context, includeSamples bool) []models.Campaign {
	return mw.next.ListCampaigns(ctx, includeSamples)
}

// DeleteCampaign implements service.CampaignOrchestrator
func (mw *serviceMetricsMiddleware) DeleteCampaign(ctx context.Context, id string) {
	mw.next.DeleteCampaign(ctx, id)
}

// Agents implements service.CampaignOrchestrator
func (mw *serviceMetricsMiddleware) Agents() []service.AgentInfo {
	return mw.next.Agents()
}

// ActiveAgent implements service.CampaignOrchestrator
func (mw *serviceMetricsMiddleware) ActiveAgent() string {
	return mw.next.ActiveAgent()
}

// Navigation implements service.CampaignOrchestrator
func (mw *serviceMetricsMiddleware) Navigation() (navigation.Screen, string) {
	return mw.next.Navigation()
}
