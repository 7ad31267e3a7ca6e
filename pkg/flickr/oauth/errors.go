package oauth

import "errors"

// Handshake and signing errors. Every failure is terminal for the
// current flow; nothing is retried internally.
var (
	ErrNotAuthenticated      = errors.New("no access token stored")
	ErrCallbackNotConfirmed  = errors.New("request token not confirmed")
	ErrIncompleteUserData    = errors.New("failed to get access token")
	ErrAuthorizationDeclined = errors.New("user authorization declined")
	ErrMalformedResponse     = errors.New("malformed auth response")

	errStageOrder = errors.New("auth stage out of order")
)
