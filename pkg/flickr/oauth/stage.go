package oauth

import "fmt"

// stage identifies where an in-flight handshake is. Transitions are
// strictly idle -> requestToken -> accessToken -> idle; a validation
// failure at any point resets straight to idle.
type stage int

const (
	stageIdle stage = iota
	stageRequestToken
	stageAccessToken
)

func (s stage) String() string {
	switch s {
	case stageRequestToken:
		return "request-token"
	case stageAccessToken:
		return "access-token"
	default:
		return "idle"
	}
}

// flow holds the state of one handshake. A fresh flow is created per
// Authenticate call and discarded when the result is delivered.
type flow struct {
	stage       stage
	token       string
	tokenSecret string
}

func (f *flow) advance(next stage) error {
	ok := (f.stage == stageIdle && next == stageRequestToken) ||
		(f.stage == stageRequestToken && next == stageAccessToken) ||
		(f.stage == stageAccessToken && next == stageIdle)
	if !ok {
		return fmt.Errorf("%w: %s -> %s", errStageOrder, f.stage, next)
	}
	f.stage = next
	return nil
}

// reset abandons the flow after a failure.
func (f *flow) reset() {
	f.stage = stageIdle
	f.token = ""
	f.tokenSecret = ""
}
