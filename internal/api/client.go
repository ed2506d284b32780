// Package api provides a client for the Sweet Shop REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/sweetshop/internal/sweets"
)

// DefaultBaseURL is the hosted API used when no URL is configured.
const DefaultBaseURL = "https://web-production-80c12.up.railway.app"

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "sweetshop/0.1"
	maxErrorBody   = 64 << 10
)

// Service is the set of remote operations the dashboard depends on.
type Service interface {
	List(ctx context.Context) ([]sweets.Item, error)
	Search(ctx context.Context, c sweets.Criteria) ([]sweets.Item, error)
	Purchase(ctx context.Context, id string, quantity int) error
	Restock(ctx context.Context, id string, quantity int) error
	Create(ctx context.Context, in sweets.Input) error
	Update(ctx context.Context, id string, in sweets.Input) error
	Delete(ctx context.Context, id string) error
}

// Verify Client implements Service at compile time.
var _ Service = (*Client)(nil)

// Client provides access to the Sweet Shop API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a new API client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API origin the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type listResponse struct {
	Sweets []sweets.Item `json:"sweets"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// List returns every item in the catalog.
func (c *Client) List(ctx context.Context) ([]sweets.Item, error) {
	var result listResponse
	if err := c.do(ctx, http.MethodGet, "/api/sweets", nil, &result); err != nil {
		return nil, err
	}
	return result.Sweets, nil
}

// Search returns the items matching the set criteria.
func (c *Client) Search(ctx context.Context, criteria sweets.Criteria) ([]sweets.Item, error) {
	params, err := criteria.Values()
	if err != nil {
		return nil, fmt.Errorf("encode criteria: %w", err)
	}

	path := "/api/sweets/search"
	if q := params.Encode(); q != "" {
		path += "?" + q
	}

	var result listResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Sweets, nil
}

// Purchase buys quantity units of an item.
func (c *Client) Purchase(ctx context.Context, id string, quantity int) error {
	return c.do(ctx, http.MethodPost, itemPath(id)+"/purchase", quantityRequest{Quantity: quantity}, nil)
}

// Restock adds quantity units to an item's stock.
func (c *Client) Restock(ctx context.Context, id string, quantity int) error {
	return c.do(ctx, http.MethodPost, itemPath(id)+"/restock", quantityRequest{Quantity: quantity}, nil)
}

// Create adds a new item to the catalog.
func (c *Client) Create(ctx context.Context, in sweets.Input) error {
	return c.do(ctx, http.MethodPost, "/api/sweets", in, nil)
}

// Update replaces the editable fields of an item.
func (c *Client) Update(ctx context.Context, id string, in sweets.Input) error {
	return c.do(ctx, http.MethodPut, itemPath(id), in, nil)
}

// Delete removes an item from the catalog.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

func itemPath(id string) string {
	return "/api/sweets/" + url.PathEscape(id)
}

// do sends a request with an optional JSON body and decodes an optional JSON result.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	reqBody := io.Reader(http.NoBody)
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, body != nil)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
