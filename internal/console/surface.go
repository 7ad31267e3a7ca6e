// Package console implements the interactive authorization step for
// terminal use: print the authorization URL, then read the pasted
// redirect URL back from the user.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Surface satisfies oauth.AuthorizationSurface over stdio. In and Out
// default to os.Stdin and os.Stdout.
type Surface struct {
	In  io.Reader
	Out io.Writer
}

// Present prints the authorization URL and blocks until the user pastes
// the callback URL or the context is canceled.
func (s *Surface) Present(ctx context.Context, authorizationURL, callbackURL string) (string, error) {
	in, out := s.In, s.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "Open this URL in your browser to authorize pictag:\n\n  %s\n\n", authorizationURL)
	fmt.Fprintf(out, "After approving you will be redirected to %s.\nPaste the full redirect URL here: ", callbackURL)

	lines := make(chan string, 1)
	errs := make(chan error, 1)
	go func() {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			errs <- err
			return
		}
		lines <- line
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-errs:
		return "", fmt.Errorf("read callback URL: %w", err)
	case line := <-lines:
		line = strings.TrimSpace(line)
		if line == "" {
			return "", errors.New("no callback URL entered")
		}
		return line, nil
	}
}
