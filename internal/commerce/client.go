// internal/commerce/client.go
package commerce

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/webmart/admin-dashboard/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to the commerce platform's admin REST API. It owns the base
// URL, the API key and the timeout; callers never see transport details.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithAPIKey sets the bearer API key sent on every request.
func WithAPIKey(apiKey string) ClientOption {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a platform API client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig builds a client from the service configuration.
func NewClientFromConfig(cfg config.PlatformConfig) *Client {
	return NewClient(cfg.BaseURL,
		WithAPIKey(cfg.APIKey),
		WithTimeout(time.Duration(cfg.Timeout)*time.Second),
	)
}

func (c *Client) buildRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

// do executes the request and decodes the response into target. Non-2xx
// statuses become an *APIError carrying the status and raw body so callers
// can surface the platform's answer verbatim.
func (c *Client) do(req *http.Request, target any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(bodyBytes),
		}
	}

	if resp.StatusCode == http.StatusNoContent || target == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string) (any, error) {
	req, err := c.buildRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var payload any
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
