package middleware

import (
	"context"
	"time"

	"github.com/go-kit/log"
	reqcontext "github.com/marketflowhq/marketflow/internal/context"
	"github.com/marketflowhq/marketflow/internal/models"
	"github.com/marketflowhq/marketflow/internal/navigation"
	"github.com/marketflowhq/marketflow/internal/service"
)

// loggingMiddleware implements logging middleware for CampaignOrchestrator
type loggingMiddleware struct {
	logger log.Logger
	next   service.CampaignOrchestrator
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(logger log.Logger) func(service.CampaignOrchestrator) service.CampaignOrchestrator {
	return func(next service.CampaignOrchestrator) service.CampaignOrchestrator {
		return &loggingMiddleware{
			logger: logger,
			next:   next,
		}
	}
}

// SubmitBrief implements service.CampaignOrchestrator with enhanced logging
func (mw *loggingMiddleware) SubmitBrief(ctx context.Context, req models.BriefRequest) (result service.SubmitBriefResult, err error) {
	defer func(begin time.Time) {
		logFields := []interface{}{
			"method", "SubmitBrief",
			"request_id", reqcontext.GetRequestID(ctx),
			"remote_addr", reqcontext.GetRemoteAddr(ctx),
			"user_agent", reqcontext.GetUserAgent(ctx),
			"campaign_name", req.Name,
			"platforms", len(req.Platforms),
			"tone", req.Tone,
			"took", time.Since(begin),
		}
		if err != nil {
			logFields = append(logFields, "err", err.Error(), "success", false)
		} else {
			logFields = append(logFields,
				"campaign_id", result.Campaign.ID,
				"status", result.Campaign.Status,
				"saved_as_draft", result.SavedAsDraft,
				"success", true,
			)
		}
		mw.logger.Log(logFields...)
	}(time.Now())

	return mw.next.SubmitBrief(ctx, req)
}

// GenerateVisuals implements service.CampaignOrchestrator with enhanced logging
func (mw *loggingMiddleware) GenerateVisuals(ctx context.Context, campaignID string) (campaign *models.Campaign, err error) {
	defer func(begin time.Time) {
		logFields := []interface{}{
			"method", "GenerateVisuals",
			"request_id", reqcontext.GetRequestID(ctx),
			"campaign_id", campaignID,
			"took", time.Since(begin),
		}
		if err != nil {
			logFields = append(logFields, "err", err.Error(), "success", false)
		} else {
			logFields = append(logFields, "images", len(campaign.Visuals.Images), "success", true)
		}
		mw.logger.Log(logFields...)
	}(time.Now())

	return mw.next.GenerateVisuals(ctx, campaignID)
}

// ViewCampaign implements service.CampaignOrchestrator
func (mw *loggingMiddleware) ViewCampaign(ctx context.Context, id string) (*models.Campaign, error) {
	return mw.next.ViewCampaign(ctx, id)
}

// ListCampaigns implements service.CampaignOrchestrator
func (mw *loggingMiddleware) ListCampaigns(ctx context.Context, includeSamples bool) []models.Campaign {
	return mw.next.ListCampaigns(ctx, includeSamples)
}

// DeleteCampaign implements service.CampaignOrchestrator with enhanced logging
func (mw *loggingMiddleware) DeleteCampaign(ctx context.Context, id string) {
	defer func(begin time.Time) {
		mw.logger.Log(
			"method", "DeleteCampaign",
			"request_id", reqcontext.GetRequestID(ctx),
			"remote_addr", reqcontext.GetRemoteAddr(ctx),
			"campaign_id", id,
			"took", time.Since(begin),
		)
	}(time.Now())

	mw.next.DeleteCampaign(ctx, id)
}

// Agents implements service.CampaignOrchestrator
func (mw *loggingMiddleware) Agents() []service.AgentInfo {
	return mw.next.Agents()
}

// ActiveAgent implements service.CampaignOrchestrator
func (mw *loggingMiddleware) ActiveAgent() string {
	return mw.next.ActiveAgent()
}

// Navigation implements service.CampaignOrchestrator
func (mw *loggingMiddleware) Navigation() (navigation.Screen, string) {
	return mw.next.Navigation()
}
