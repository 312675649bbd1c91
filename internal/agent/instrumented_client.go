package agent

import (
	"context"

	"github.com/marketflowhq/marketflow/internal/metrics"
	"github.com/marketflowhq/marketflow/internal/models"
)

// InstrumentedClient wraps a gateway client with metrics collection
type InstrumentedClient struct {
	next    *Client
	metrics *metrics.Metrics
}

// NewInstrumentedClient creates a new instrumented gateway client
func NewInstrumentedClient(next *Client, m *metrics.Metrics) *InstrumentedClient {
	return &InstrumentedClient{
		next:    next,
		metrics: m,
	}
}

// Invoke records the round-trip outcome per agent id
func (c *InstrumentedClient) Invoke(ctx context.Context, message, agentID string) (*models.AgentEnvelope, error) {
	envelope, err := c.next.Invoke(ctx, message, agentID)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.metrics.RecordAgentInvocation(agentID, outcome)

	return envelope, err
}
