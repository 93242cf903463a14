package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	nrpkg "github.com/piresc/taximeter/internal/pkg/newrelic"
	"github.com/piresc/taximeter/internal/pkg/retry"
)

// maxBodySize bounds how much of a response body is read
const maxBodySize = 1 << 20

// HTTPError is returned for non 2xx responses
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Client performs JSON requests, retrying transport failures and 5xx responses
type Client struct {
	httpClient *http.Client
	retrier    *retry.Retrier
}

// NewClient creates a new HTTP client. A nil retrier makes a single attempt.
func NewClient(timeout time.Duration, retrier *retry.Retrier) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if retrier == nil {
		retrier = retry.New(retry.Config{}, nil)
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		retrier:    retrier,
	}
}

// GetJSON fetches url and decodes its JSON body into out
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	return c.retrier.Execute(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return retry.Permanent(fmt.Errorf("failed to build request: %w", err))
		}
		req.Header.Set("Accept", "application/json")

		resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
			return c.httpClient.Do(req)
		})
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode >= 500 {
			return &HTTPError{StatusCode: resp.StatusCode, Message: "Server error"}
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return retry.Permanent(&HTTPError{StatusCode: resp.StatusCode, Message: "Unexpected response"})
		}

		if err := json.Unmarshal(body, out); err != nil {
			return retry.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return nil
	})
}
