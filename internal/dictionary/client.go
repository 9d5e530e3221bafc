// Package dictionary talks to the iciba dictionary HTTP API and turns its
// responses into the markdown shown in the editor.
package dictionary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const requestTimeout = 10 * time.Second

// Client fetches raw definition payloads from the dictionary service.
// Safe for concurrent use.
type Client struct {
	endpoint string
	key      string
	client   *http.Client
}

func NewClient(endpoint, key string) *Client {
	return &Client{
		endpoint: endpoint,
		key:      key,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

// Lookup returns the raw response body for word.
func (c *Client) Lookup(ctx context.Context, word string) ([]byte, error) {
	query := url.Values{}
	query.Set("type", "json")
	query.Set("key", c.key)
	query.Set("w", word)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.endpoint+"?"+query.Encode(),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach dictionary service: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dictionary service returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
