package oauth

import "context"

// AuthorizationSurface obtains user consent for the handshake. Present
// blocks until the user completes or declines authorization and returns
// the callback URL carrying the verifier. Implementations range from a
// terminal prompt to an embedded web view.
type AuthorizationSurface interface {
	Present(ctx context.Context, authorizationURL, callbackURL string) (string, error)
}
