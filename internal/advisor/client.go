// Package advisor is the boundary client for the external narrative
// analysis service. The service is an opaque text generator: it consumes a
// bond record, preferences, and a payout schedule, and produces free text.
// Nothing of its internals is modeled here.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls the narrative analysis service over HTTP.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// NewClient creates a client for the given service endpoint. The token is
// sent as a bearer credential on every request.
func NewClient(endpoint, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		endpoint:   endpoint,
		token:      token,
	}
}

// Analyze submits the analysis request and returns the generated text.
func (c *Client) Analyze(ctx context.Context, req AnalysisRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode analysis request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build analysis request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("analysis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("analysis service returned status %d: %s", resp.StatusCode, string(data))
	}

	var result AnalysisResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode analysis response: %w", err)
	}

	return result.Analysis, nil
}
