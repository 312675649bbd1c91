package middleware

import (
	"context"
	"sync"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reqcontext "github.com/marketflowhq/marketflow/internal/context"
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

// recordingLogger captures logged keyvals for inspection
type recordingLogger struct {
	mu      sync.Mutex
	entries [][]interface{}
}

func (l *recordingLogger) Log(keyvals ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, keyvals)
	return nil
}

func (l *recordingLogger) fields(t *testing.T) map[interface{}]interface{} {
	t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()
	require.Len(t, l.entries, 1)
	entry := l.entries[0]
	require.Zero(t, len(entry)%2)
	out := make(map[interface{}]interface{}, len(entry)/2)
	for i := 0; i < len(entry); i += 2 {
		out[entry[i]] = entry[i+1]
	}
	return out
}

var _ log.Logger = (*recordingLogger)(nil)

func requestContext() context.Context {
	ctx := reqcontext.WithRequestID(context.Background(), "req-1")
	ctx = reqcontext.WithUserAgent(ctx, "curl/8.0")
	ctx = reqcontext.WithRemoteAddr(ctx, "198.51.100.7:4242")
	return ctx
}

func TestLoggingMiddleware_SubmitBriefLogsRequestOrigin(t *testing.T) {
	next := &MockOrchestrator{}
	campaign := models.Campaign{ID: "c1", Status: models.StatusComplete}
	next.On("SubmitBrief", mock.Anything, mock.Anything).
		Return(service.SubmitBriefResult{Campaign: campaign}, nil)

	logger := &recordingLogger{}
	mw := NewLoggingMiddleware(logger)(next)

	_, err := mw.SubmitBrief(requestContext(), models.BriefRequest{Name: "Summer Launch"})
	require.NoError(t, err)

	fields := logger.fields(t)
	assert.Equal(t, "SubmitBrief", fields["method"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "198.51.100.7:4242", fields["remote_addr"])
	assert.Equal(t, "curl/8.0", fields["user_agent"])
	assert.Equal(t, "c1", fields["campaign_id"])
	assert.Equal(t, true, fields["success"])

	next.AssertExpectations(t)
}

func TestLoggingMiddleware_DeleteCampaignLogsRequestOrigin(t *testing.T) {
	next := &MockOrchestrator{}
	next.On("DeleteCampaign", mock.Anything, "c1").Return()

	logger := &recordingLogger{}
	mw := NewLoggingMiddleware(logger)(next)

	mw.DeleteCampaign(requestContext(), "c1")

	fields := logger.fields(t)
	assert.Equal(t, "DeleteCampaign", fields["method"])
	assert.Equal(t, "198.51.100.7:4242", fields["remote_addr"])
	assert.Equal(t, "c1", fields["campaign_id"])

	next.AssertExpectations(t)
}
