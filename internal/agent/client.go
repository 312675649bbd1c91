package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/marketflowhq/marketflow/internal/models"
)

// Client is the HTTP gateway to the external agent platform. One network
// round-trip per invocation; no retries. The envelope body is decoded but
// never interpreted here: success/failure semantics belong to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a gateway client for the given agent platform base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type invokeRequest struct {
	Message string `json:"message"`
	AgentID string `json:"agent_id"`
}

// Invoke sends a natural-language instruction to the named agent and returns
// the raw response envelope. Transport failures (connection errors, non-2xx
// statuses, undecodable bodies) surface as errors.
func (c *Client) Invoke(ctx context.Context, message, agentID string) (*models.AgentEnvelope, error) {
	body, err := json.Marshal(invokeRequest{Message: message, AgentID: agentID})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/invoke", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agent service unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("agent service returned %d: %s", resp.StatusCode, string(b))
	}

	var envelope models.AgentEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode agent envelope: %w", err)
	}
	return &envelope, nil
}
