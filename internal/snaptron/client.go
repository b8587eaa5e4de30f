package snaptron

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/langmead-lab/snaptron-mcp/internal/common"
)

// Client issues GET requests against the Snaptron web services.
// It holds no per-query state; each fetch is independent.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a client for the given service root.
func NewClient(baseURL string, timeout time.Duration, logger *common.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// QueryURL compiles the request URL for a compilation-scoped resource.
func (c *Client) QueryURL(compilation string, resource Resource, p Params) string {
	return CompileQueryURL(c.baseURL, compilation, resource, p)
}

// RegistryURL returns the compilation registry listing URL.
func (c *Client) RegistryURL() string {
	return RegistryURL(c.baseURL)
}

// Fetch performs a GET request and returns the response body as text.
// Error responses surface the raw body — the service's error vocabulary is
// passed through, not interpreted. No retries are attempted.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	correlationID := uuid.New().String()
	logger := c.logger.WithCorrelationId(correlationID)

	logger.Debug().
		Str("method", http.MethodGet).
		Str("url", rawURL).
		Msg("Snaptron Request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Correlation-ID", correlationID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		logger.Error().Err(err).Str("url", rawURL).Dur("duration", duration).Msg("Snaptron Request Failed")
		return "", fmt.Errorf("snaptron request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Int("bytes", len(body)).
		Msg("Snaptron Response")

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("snaptron returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return string(body), nil
}
