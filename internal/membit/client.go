package membit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.membit.ai/v1"

// Result-count bounds accepted by the API per operation.
const (
	maxClusterLimit = 50
	maxPostLimit    = 25
)

// Client is a minimal Membit API client covering the two search operations
// this tool needs.
type Client struct {
	// BaseURL may be overridden before the first call; tests point it at a
	// local server.
	BaseURL string

	apiKey string
	client *http.Client
}

// NewClient creates a client authenticated with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ClusterSearch returns discussion clusters matching the query, in the order
// the API ranked them. The limit is clamped to the API's accepted range.
func (c *Client) ClusterSearch(ctx context.Context, query string, limit int) ([]Cluster, error) {
	var payload struct {
		Clusters []Cluster `json:"clusters"`
	}
	if err := c.search(ctx, "/clusters/search", query, clamp(limit, maxClusterLimit), &payload); err != nil {
		return nil, err
	}
	return payload.Clusters, nil
}

// PostSearch returns raw posts matching the query.
func (c *Client) PostSearch(ctx context.Context, query string, limit int) ([]Post, error) {
	var payload struct {
		Posts []Post `json:"posts"`
	}
	if err := c.search(ctx, "/posts/search", query, clamp(limit, maxPostLimit), &payload); err != nil {
		return nil, err
	}
	return payload.Posts, nil
}

func (c *Client) search(ctx context.Context, path, query string, limit int, out any) error {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("output_format", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Membit-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("membit API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("membit API %d: %s", resp.StatusCode, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding membit response: %w", err)
	}
	return nil
}

// clamp bounds a requested result count to [1, upper].
func clamp(limit, upper int) int {
	if limit < 1 {
		return 1
	}
	if limit > upper {
		return upper
	}
	return limit
}
