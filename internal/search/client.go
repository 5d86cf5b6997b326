// README: Serper web search client; one POST per query, raw error body on non-200.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Organic is a single natural (non-sponsored) search hit.
type Organic struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Response is the subset of the Serper payload the planner consumes.
type Response struct {
	Organic []Organic `json:"organic"`
}

// Client is the contract for web search backends, so the pipeline and tests
// can swap implementations (live Serper, cached, stub).
type Client interface {
	Search(ctx context.Context, query string) (*Response, error)
}

// ProviderError carries the raw response body of a non-200 answer from the
// search provider. The body is surfaced to the user verbatim.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("search provider returned %d: %s", e.StatusCode, e.Body)
}

// SerperClient performs web searches via the Serper API.
type SerperClient struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// NewSerperClient returns a SerperClient for the given endpoint and API key.
func NewSerperClient(endpoint, apiKey string) *SerperClient {
	return &SerperClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   endpoint,
		apiKey:     apiKey,
	}
}

type searchRequest struct {
	Q string `json:"q"`
}

// Search issues a single synchronous POST and decodes the result.
// Non-200 responses become a *ProviderError; there is no retry and no
// rate-limit handling, transport failures propagate as-is.
func (c *SerperClient) Search(ctx context.Context, query string) (*Response, error) {
	payload, err := json.Marshal(searchRequest{Q: query})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return &out, nil
}
