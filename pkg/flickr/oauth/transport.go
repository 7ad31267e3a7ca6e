package oauth

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Transport issues a single HTTP request and returns the raw response
// body. No retries are performed; any error is terminal for the flow.
type Transport interface {
	Fetch(ctx context.Context, method, url string) ([]byte, error)
}

// HTTPTransport is the net/http backed Transport. Callers that need
// timeouts set them on the supplied http.Client; a hung request only
// ends when its context is canceled.
type HTTPTransport struct {
	Client *http.Client
}

// Fetch performs the request and reads the full body.
func (t *HTTPTransport) Fetch(ctx context.Context, method, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	hc := t.Client
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth endpoint returned %d: %s", resp.StatusCode, body)
	}
	return body, nil
}
