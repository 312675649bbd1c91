package endpoint

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/marketflowhq/marketflow/internal/models"
	"github.com/marketflowhq/marketflow/internal/navigation"
	"github.com/marketflowhq/marketflow/internal/service"
)

// CampaignEndpoints holds all endpoints for the campaign service
type CampaignEndpoints struct {
	SubmitBriefEndpoint     endpoint.Endpoint
	GenerateVisualsEndpoint endpoint.Endpoint
	ListCampaignsEndpoint   endpoint.Endpoint
	ViewCampaignEndpoint    endpoint.Endpoint
	DeleteCampaignEndpoint  endpoint.Endpoint
	AgentStatusEndpoint     endpoint.Endpoint
}

// MakeCampaignEndpoints creates endpoints for the campaign orchestrator
func MakeCampaignEndpoints(s service.CampaignOrchestrator) CampaignEndpoints {
	return CampaignEndpoints{
		SubmitBriefEndpoint:     makeSubmitBriefEndpoint(s),
		GenerateVisualsEndpoint: makeGenerateVisualsEndpoint(s),
		ListCampaignsEndpoint:   makeListCampaignsEndpoint(s),
		ViewCampaignEndpoint:    makeViewCampaignEndpoint(s),
		DeleteCampaignEndpoint:  makeDeleteCampaignEndpoint(s),
		AgentStatusEndpoint:     makeAgentStatusEndpoint(s),
	}
}

// SubmitBriefRequest represents the request for submitting a campaign brief
type SubmitBriefRequest struct {
	Brief models.BriefRequest
}

// SubmitBriefResponse represents the response for submitting a campaign brief
type SubmitBriefResponse struct {
	Campaign     models.Campaign `json:"campaign"`
	SavedAsDraft bool            `json:"saved_as_draft"`
	Err          error           `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r SubmitBriefResponse) Failed() error {
	return r.Err
}

func makeSubmitBriefEndpoint(s service.CampaignOrchestrator) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(SubmitBriefRequest)
		result, err := s.SubmitBrief(ctx, req.Brief)
		return SubmitBriefResponse{
			Campaign:     result.Campaign,
			SavedAsDraft: result.SavedAsDraft,
			Err:          err,
		}, nil
	}
}

// GenerateVisualsRequest represents the request for second-phase visual generation
type GenerateVisualsRequest struct {
	CampaignID string
}

// GenerateVisualsResponse represents the response for visual generation
type GenerateVisualsResponse struct {
	Campaign *models.Campaign `json:"campaign,omitempty"`
	Err      error            `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r GenerateVisualsResponse) Failed() error {
	return r.Err
}

func makeGenerateVisualsEndpoint(s service.CampaignOrchestrator) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(GenerateVisualsRequest)
		campaign, err := s.GenerateVisuals(ctx, req.CampaignID)
		return GenerateVisualsResponse{
			Campaign: campaign,
			Err:      err,
		}, nil
	}
}

// ListCampaignsRequest represents the request for the merged campaign view
type ListCampaignsRequest struct {
	IncludeSamples bool
}

// ListCampaignsResponse represents the response for the merged campaign view
type ListCampaignsResponse struct {
	Campaigns []models.Campaign `json:"campaigns"`
}

func makeListCampaignsEndpoint(s service.CampaignOrchestrator) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(ListCampaignsRequest)
		campaigns := s.ListCampaigns(ctx, req.IncludeSamples)
		return ListCampaignsResponse{Campaigns: campaigns}, nil
	}
}

// ViewCampaignRequest represents the request for viewing a single campaign
type ViewCampaignRequest struct {
	CampaignID string
}

// ViewCampaignResponse represents the response for viewing a single campaign
type ViewCampaignResponse struct {
	Campaign *models.Campaign `json:"campaign,omitempty"`
	Err      error            `json:"error,omitempty"`
}

// Failed implements the endpoint.Failer interface
func (r ViewCampaignResponse) Failed() error {
	return r.Err
}

func makeViewCampaignEndpoint(s service.CampaignOrchestrator) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(ViewCampaignRequest)
		campaign, err := s.ViewCampaign(ctx, req.CampaignID)
		return ViewCampaignResponse{
			Campaign: campaign,
			Err:      err,
		}, nil
	}
}

// DeleteCampaignRequest represents the request for deleting a campaign
type DeleteCampaignRequest struct {
	CampaignID string
}

// DeleteCampaignResponse represents the response for deleting a campaign
type DeleteCampaignResponse struct{}

func makeDeleteCampaignEndpoint(s service.CampaignOrchestrator) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(DeleteCampaignRequest)
		s.DeleteCampaign(ctx, req.CampaignID)
		return DeleteCampaignResponse{}, nil
	}
}

// AgentStatusRequest represents the request for the agent status panel
type AgentStatusRequest struct{}

// AgentStatusResponse feeds the agent status panel: the configured roster,
// which agent is generating right now, and where navigation points.
type AgentStatusResponse struct {
	Agents           []service.AgentInfo `json:"agents"`
	ActiveAgentID    string              `json:"active_agent_id"`
	Screen           navigation.Screen   `json:"screen"`
	ActiveCampaignID string              `json:"active_campaign_id,omitempty"`
}

func makeAgentStatusEndpoint(s service.CampaignOrchestrator) endpoint.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		screen, activeCampaignID := s.Navigation()
		return AgentStatusResponse{
			Agents:           s.Agents(),
			ActiveAgentID:    s.ActiveAgent(),
			Screen:           screen,
			ActiveCampaignID: activeCampaignID,
		}, nil
	}
}
