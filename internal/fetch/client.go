// Package fetch provides the minimal HTTP client the fetch example moves
// into its spawned task.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultURL is the fixed probe target. There is deliberately no
// configuration surface around it.
const DefaultURL = "https://google.com"

// Client performs single GET probes. It is meant to have exactly one owner;
// move it into the task that uses it and leave the original binding alone.
type Client struct {
	http *http.Client
}

// New returns a probe client with a sane transport timeout.
func New() *Client {
	return &Client{
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Get issues one GET against url and returns the response status code. The
// body is drained and discarded; callers only care whether the call
// succeeded. Any transport failure comes back as an error for the caller to
// treat as fatal.
func (c *Client) Get(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return resp.StatusCode, fmt.Errorf("drain response from %s: %w", url, err)
	}

	return resp.StatusCode, nil
}
