package endpoint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marketflowhq/marketflow/internal/models"
	"github.com/marketflowhq/marketflow/internal/navigation"
	"github.com/marketflowhq/marketflow/internal/service"
)

// MockOrchestrator is a mock implementation of service.CampaignOrchestrator
type MockOrchestrator struct {
	mock.Mock
}

func (m *MockOrchestrator) SubmitBrief(ctx context.Context, req models.BriefRequest) (service.SubmitBriefResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(service.SubmitBriefResult), args.Error(1)
}

func (m *MockOrchestrator) GenerateVisuals(ctx context.Context, campaignID string) (*models.Campaign, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockOrchestrator) ViewCampaign(ctx context.Context, id string) (*models.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockOrchestrator) ListCampaigns(ctx context.Context, includeSamples bool) []models.Campaign {
	args := m.Called(ctx, includeSamples)
	return args.Get(0).([]models.Campaign)
}

func (m *MockOrchestrator) DeleteCampaign(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func (m *MockOrchestrator) Agents() []service.AgentInfo {
	args := m.Called()
	return args.Get(0).([]service.AgentInfo)
}

func (m *MockOrchestrator) ActiveAgent() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockOrchestrator) Navigation() (navigation.Screen, string) {
	args := m.Called()
	return args.Get(0).(navigation.Screen), args.String(1)
}

func TestMakeCampaignEndpoints(t *testing.T) {
	endpoints := MakeCampaignEndpoints(&MockOrchestrator{})

	assert.NotNil(t, endpoints.SubmitBriefEndpoint)
	assert.NotNil(t, endpoints.GenerateVisualsEndpoint)
	assert.NotNil(t, endpoints.ListCampaignsEndpoint)
	assert.NotNil(t, endpoints.ViewCampaignEndpoint)
	assert.NotNil(t, endpoints.DeleteCampaignEndpoint)
	assert.NotNil(t, endpoints.AgentStatusEndpoint)
}

func TestSubmitBriefEndpoint_Success(t *testing.T) {
	mockService := &MockOrchestrator{}
	endpoints := MakeCampaignEndpoints(mockService)

	campaign := models.Campaign{ID: "c1", Name: "Summer Launch"}
	mockService.On("SubmitBrief", mock.Anything, mock.MatchedBy(func(req models.BriefRequest) bool {
		return req.Name == "Summer Launch"
	})).Return(service.SubmitBriefResult{Campaign: campaign}, nil)

	response, err := endpoints.SubmitBriefEndpoint(context.Background(), SubmitBriefRequest{
		Brief: models.BriefRequest{Name: "Summer Launch"},
	})

	require.NoError(t, err)
	resp := response.(SubmitBriefResponse)
	assert.Equal(t, "c1", resp.Campaign.ID)
	assert.False(t, resp.SavedAsDraft)
	assert.Nil(t, resp.Err)

	mockService.AssertExpectations(t)
}

func TestSubmitBriefEndpoint_ServiceError(t *testing.T) {
	mockService := &MockOrchestrator{}
	endpoints := MakeCampaignEndpoints(mockService)

	serviceError := errors.New("agent unavailable")
	mockService.On("SubmitBrief", mock.Anything, mock.Anything).
		Return(service.SubmitBriefResult{}, serviceError)

	response, err := endpoints.SubmitBriefEndpoint(context.Background(), SubmitBriefRequest{})

	// Endpoint itself doesn't return error, error is in response
	require.NoError(t, err)
	resp := response.(SubmitBriefResponse)
	assert.Equal(t, serviceError, resp.Err)
	assert.Equal(t, serviceError, resp.Failed())

	mockService.AssertExpectations(t)
}

func TestGenerateVisualsEndpoint(t *testing.T) {
	mockService := &MockOrchestrator{}
	endpoints := MakeCampaignEndpoints(mockService)

	campaign := &models.Campaign{ID: "c1", Visuals: &models.CampaignVisuals{}}
	mockService.On("GenerateVisuals", mock.Anything, "c1").Return(campaign, nil)

	response, err := endpoints.GenerateVisualsEndpoint(context.Background(), GenerateVisualsRequest{CampaignID: "c1"})

	require.NoError(t, err)
	resp := response.(GenerateVisualsResponse)
	assert.Equal(t, campaign, resp.Campaign)
	assert.Nil(t, resp.Failed())

	mockService.AssertExpectations(t)
}

func TestListCampaignsEndpoint(t *testing.T) {
	mockService := &MockOrchestrator{}
	endpoints := MakeCampaignEndpoints(mockService)

	mockService.On("ListCampaigns", mock.Anything, false).
		Return([]models.Campaign{{ID: "c1"}, {ID: "c2"}})

	response, err := endpoints.ListCampaignsEndpoint(context.Background(), ListCampaignsRequest{IncludeSamples: false})

	require.NoError(t, err)
	resp := response.(ListCampaignsResponse)
	assert.Len(t, resp.Campaigns, 2)

	mockService.AssertExpectations(t)
}

func TestViewCampaignEndpoint_NotFound(t *testing.T) {
	mockService := &MockOrchestrator{}
	endpoints := MakeCampaignEndpoints(mockService)

	mockService.On("ViewCampaign", mock.Anything, "missing").
		Return(nil, service.ErrCampaignNotFound)

	response, err := endpoints.ViewCampaignEndpoint(context.Background(), ViewCampaignRequest{CampaignID: "missing"})

	require.NoError(t, err)
	resp := response.(ViewCampaignResponse)
	assert.Nil(t, resp.Campaign)
	assert.ErrorIs(t, resp.Failed(), service.ErrCampaignNotFound)

	mockService.AssertExpectations(t)
}

func TestDeleteCampaignEndpoint(t *testing.T) {
	mockService := &MockOrchestrator{}
	endpoints := MakeCampaignEndpoints(mockService)

	mockService.On("DeleteCampaign", mock.Anything, "c1").Return()

	response, err := endpoints.DeleteCampaignEndpoint(context.Background(), DeleteCampaignRequest{CampaignID: "c1"})

	require.NoError(t, err)
	assert.IsType(t, DeleteCampaignResponse{}, response)

	mockService.AssertExpectations(t)
}

func TestAgentStatusEndpoint(t *testing.T) {
	mockService := &MockOrchestrator{}
	endpoints := MakeCampaignEndpoints(mockService)

	mockService.On("Agents").Return([]service.AgentInfo{{ID: "agent-content"}})
	mockService.On("ActiveAgent").Return("")
	mockService.On("Navigation").Return(navigation.ScreenDashboard, "")

	response, err := endpoints.AgentStatusEndpoint(context.Background(), AgentStatusRequest{})

	require.NoError(t, err)
	resp := response.(AgentStatusResponse)
	assert.Len(t, resp.Agents, 1)
	assert.Empty(t, resp.ActiveAgentID)
	assert.Equal(t, navigation.ScreenDashboard, resp.Screen)

	mockService.AssertExpectations(t)
}
