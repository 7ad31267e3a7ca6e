package oauth

import (
	"fmt"
	"net/url"
	"strings"
)

// parseAuthResponse decodes an ampersand-delimited key=value body as
// returned by the auth endpoints. Values are percent-decoded.
func parseAuthResponse(body []byte) (map[string]string, error) {
	fields := make(map[string]string)
	for _, pair := range strings.Split(string(body), "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			return nil, fmt.Errorf("%w: bad pair %q", ErrMalformedResponse, pair)
		}
		decoded, err := percentDecode(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		fields[key] = decoded
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	return fields, nil
}

// verifierFromCallback extracts the oauth_verifier value from the
// callback URL handed back by the authorization surface. The service
// appends the verifier as the second query component.
func verifierFromCallback(callback string) (string, error) {
	u, err := url.Parse(callback)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	parts := strings.Split(u.RawQuery, "&")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: no verifier in callback %q", ErrMalformedResponse, callback)
	}
	_, value, found := strings.Cut(parts[1], "=")
	if !found || value == "" {
		return "", fmt.Errorf("%w: no verifier in callback %q", ErrMalformedResponse, callback)
	}
	return percentDecode(value)
}
