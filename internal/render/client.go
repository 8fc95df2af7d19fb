package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// renderTimeout is the fixed ceiling for a single render request. A call
// that exceeds it is abandoned and reported as a backend failure for that
// candidate.
const renderTimeout = 10 * time.Second

// maxErrorBody bounds how much of an error response body is kept for
// diagnostics.
const maxErrorBody = 512

// Client issues render requests against candidate endpoints. It performs one
// request per call and never retries the same endpoint; retry-across-
// endpoints is the dispatcher's job.
//
// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a render client with the fixed request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: renderTimeout},
	}
}

// Render fetches the rendered artifact for an encoded payload from one
// endpoint. kind is the Kroki diagram kind and is ignored for the PlantUML
// protocol.
//
// A connection failure, a timeout, and a non-success HTTP status all return
// a *BackendError; the caller treats the three identically.
func (c *Client) Render(ctx context.Context, endpoint Endpoint, kind, payload, format string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	url := endpoint.RenderURL(kind, format, payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &BackendError{Endpoint: endpoint, Err: fmt.Errorf("build request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &BackendError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &BackendError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("backend returned %s: %s", resp.Status, string(snippet)),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BackendError{Endpoint: endpoint, Err: fmt.Errorf("read response: %w", err)}
	}
	return data, nil
}
