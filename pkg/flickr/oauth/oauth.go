// Package oauth implements the Flickr OAuth 1.0a handshake and request
// signing: request token, user authorization, access token, and
// HMAC-SHA1 signed URLs for authenticated API calls afterwards.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pictag/pictag/pkg/flickr/secrets"
)

// Permission is the access level requested during authorization.
type Permission string

// Access levels recognized by the service.
const (
	PermRead   Permission = "read"
	PermWrite  Permission = "write"
	PermDelete Permission = "delete"
)

// Endpoints holds the three handshake URLs. The zero value means
// DefaultEndpoints; tests point these at an httptest server.
type Endpoints struct {
	RequestToken string
	Authorize    string
	AccessToken  string
}

// DefaultEndpoints returns the production Flickr endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		RequestToken: "https://www.flickr.com/services/oauth/request_token",
		Authorize:    "https://www.flickr.com/services/oauth/authorize",
		AccessToken:  "https://www.flickr.com/services/oauth/access_token",
	}
}

// Credentials are the application's registered consumer credentials.
// They outlive any number of handshake flows.
type Credentials struct {
	Key         string
	Secret      string
	CallbackURL string
}

// User identifies the account that granted access. It is populated only
// on a successful access-token exchange.
type User struct {
	ID       string `json:"user_nsid"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// Grant is the long-lived result of a completed handshake.
type Grant struct {
	Token       string
	TokenSecret string
	User        User
}

// Result is delivered to AuthenticateAsync completion handlers.
type Result struct {
	Grant *Grant
	Err   error
}

// Config assembles a Client with its injected collaborators.
type Config struct {
	Credentials Credentials
	Endpoints   Endpoints

	// Store persists the access token, token secret and current user.
	Store secrets.Store

	// Transport issues the handshake requests; nil means HTTPTransport
	// over http.DefaultClient.
	Transport Transport

	// Surface obtains user consent; required for Authenticate.
	Surface AuthorizationSurface

	// Dispatch marshals async completion delivery onto a caller-chosen
	// context (a UI loop, typically); nil runs the handler inline.
	Dispatch func(func())

	// Nonce and Now override request randomness and clock for tests.
	Nonce func() string
	Now   func() time.Time

	Logger *slog.Logger
}

// Client drives the OAuth 1.0a handshake and produces signed request
// URLs. A Client runs one handshake at a time; SignedURL is safe for
// concurrent use once authenticated.
type Client struct {
	creds     Credentials
	endpoints Endpoints
	store     secrets.Store
	transport Transport
	surface   AuthorizationSurface
	dispatch  func(func())
	nonce     func() string
	now       func() time.Time
	log       *slog.Logger
}

// NewClient creates a Client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Credentials.Key == "" || cfg.Credentials.Secret == "" {
		return nil, errors.New("consumer key and secret are required")
	}
	if cfg.Store == nil {
		return nil, errors.New("secret store is required")
	}

	c := &Client{
		creds:     cfg.Credentials,
		endpoints: cfg.Endpoints,
		store:     cfg.Store,
		transport: cfg.Transport,
		surface:   cfg.Surface,
		dispatch:  cfg.Dispatch,
		nonce:     cfg.Nonce,
		now:       cfg.Now,
		log:       cfg.Logger,
	}
	if c.endpoints == (Endpoints{}) {
		c.endpoints = DefaultEndpoints()
	}
	if c.transport == nil {
		c.transport = &HTTPTransport{}
	}
	if c.nonce == nil {
		c.nonce = uuid.NewString
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c, nil
}

// Authenticate runs the full three-step handshake: request token, user
// authorization, access token. Any previously stored credentials are
// cleared first, so a failed handshake never leaves stale tokens
// behind. On success the new token, secret and user are persisted.
func (c *Client) Authenticate(ctx context.Context, perm Permission) (*Grant, error) {
	if c.surface == nil {
		return nil, errors.New("authorization surface is required")
	}
	if err := c.clearStored(ctx); err != nil {
		return nil, fmt.Errorf("clear stored credentials: %w", err)
	}

	f := &flow{}
	if err := f.advance(stageRequestToken); err != nil {
		return nil, err
	}
	if err := c.requestToken(ctx, f); err != nil {
		f.reset()
		return nil, err
	}
	if err := f.advance(stageAccessToken); err != nil {
		return nil, err
	}

	verifier, err := c.authorize(ctx, f, perm)
	if err != nil {
		f.reset()
		return nil, err
	}

	grant, err := c.accessToken(ctx, f, verifier)
	if err != nil {
		f.reset()
		return nil, err
	}
	if err := c.persist(ctx, grant); err != nil {
		f.reset()
		// token and secret are stored both-or-neither
		_ = c.clearStored(ctx)
		return nil, fmt.Errorf("persist credentials: %w", err)
	}
	if err := f.advance(stageIdle); err != nil {
		return nil, err
	}

	c.log.Info("authenticated", "user", grant.User.Username, "perms", string(perm))
	return grant, nil
}

// AuthenticateAsync runs Authenticate in a goroutine and delivers the
// result exactly once through the configured Dispatch function.
func (c *Client) AuthenticateAsync(ctx context.Context, perm Permission, onComplete func(Result)) {
	var once sync.Once
	go func() {
		grant, err := c.Authenticate(ctx, perm)

		deliver := c.dispatch
		if deliver == nil {
			deliver = func(fn func()) { fn() }
		}
		deliver(func() {
			once.Do(func() { onComplete(Result{Grant: grant, Err: err}) })
		})
	}()
}

// SignedURL builds a signed request URL for an authenticated API call
// using the persisted access token. It mutates no state and is safe to
// call concurrently. Caller-supplied parameters win on key collision.
func (c *Client) SignedURL(ctx context.Context, method, baseURL string, extra map[string]string) (string, error) {
	token, err := c.store.Get(ctx, secrets.KeyAccessToken)
	if errors.Is(err, secrets.ErrNotFound) {
		return "", ErrNotAuthenticated
	}
	if err != nil {
		return "", fmt.Errorf("load access token: %w", err)
	}
	tokenSecret, err := c.store.Get(ctx, secrets.KeyTokenSecret)
	if errors.Is(err, secrets.ErrNotFound) {
		return "", ErrNotAuthenticated
	}
	if err != nil {
		return "", fmt.Errorf("load token secret: %w", err)
	}

	params := c.baseParams()
	params["oauth_token"] = token
	for k, v := range extra {
		params[k] = v
	}
	return signedURL(method, baseURL, params, c.creds.Secret, tokenSecret), nil
}

// CurrentUser returns the persisted user from the last successful
// handshake.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	raw, err := c.store.Get(ctx, secrets.KeyCurrentUser)
	if errors.Is(err, secrets.ErrNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("load current user: %w", err)
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode current user: %w", err)
	}
	return &user, nil
}

// Logout removes all persisted credentials.
func (c *Client) Logout(ctx context.Context) error {
	return c.clearStored(ctx)
}

// requestToken performs step 1: acquire a request token and verify the
// service confirmed our callback.
func (c *Client) requestToken(ctx context.Context, f *flow) error {
	params := c.baseParams()
	params["oauth_callback"] = c.creds.CallbackURL

	u := signedURL(http.MethodGet, c.endpoints.RequestToken, params, c.creds.Secret, "")
	c.log.Debug("fetching request token", "stage", f.stage.String())
	body, err := c.transport.Fetch(ctx, http.MethodGet, u)
	if err != nil {
		return fmt.Errorf("request token: %w", err)
	}
	fields, err := parseAuthResponse(body)
	if err != nil {
		return fmt.Errorf("request token: %w", err)
	}
	if fields["oauth_callback_confirmed"] != "true" {
		return ErrCallbackNotConfirmed
	}

	token, tokenSecret := fields["oauth_token"], fields["oauth_token_secret"]
	if token == "" || tokenSecret == "" {
		return fmt.Errorf("%w: request token response missing token", ErrMalformedResponse)
	}
	f.token, f.tokenSecret = token, tokenSecret
	return nil
}

// authorize performs step 2: hand the authorization URL to the surface
// and extract the verifier from the callback it returns.
func (c *Client) authorize(ctx context.Context, f *flow, perm Permission) (string, error) {
	authURL := c.endpoints.Authorize +
		"?oauth_token=" + url.QueryEscape(f.token) +
		"&perms=" + url.QueryEscape(string(perm))

	callback, err := c.surface.Present(ctx, authURL, c.creds.CallbackURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthorizationDeclined, err)
	}
	return verifierFromCallback(callback)
}

// accessToken performs step 3: exchange the request token and verifier
// for the long-lived access token and the authenticated user.
func (c *Client) accessToken(ctx context.Context, f *flow, verifier string) (*Grant, error) {
	params := c.baseParams()
	params["oauth_token"] = f.token
	params["oauth_verifier"] = verifier

	u := signedURL(http.MethodGet, c.endpoints.AccessToken, params, c.creds.Secret, f.tokenSecret)
	c.log.Debug("fetching access token", "stage", f.stage.String())
	body, err := c.transport.Fetch(ctx, http.MethodGet, u)
	if err != nil {
		return nil, fmt.Errorf("access token: %w", err)
	}
	fields, err := parseAuthResponse(body)
	if err != nil {
		return nil, fmt.Errorf("access token: %w", err)
	}

	grant := &Grant{
		Token:       fields["oauth_token"],
		TokenSecret: fields["oauth_token_secret"],
		User: User{
			ID:       fields["user_nsid"],
			Username: fields["username"],
			Fullname: fields["fullname"],
		},
	}
	if grant.Token == "" || grant.TokenSecret == "" ||
		grant.User.ID == "" || grant.User.Username == "" || grant.User.Fullname == "" {
		return nil, ErrIncompleteUserData
	}
	return grant, nil
}

// baseParams builds the OAuth parameters common to every signed
// request: fresh nonce, current timestamp, consumer key, method and
// version.
func (c *Client) baseParams() map[string]string {
	return map[string]string{
		"oauth_nonce":            c.nonce(),
		"oauth_timestamp":        strconv.FormatInt(c.now().Unix(), 10),
		"oauth_consumer_key":     c.creds.Key,
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_version":          "1.0",
	}
}

func (c *Client) persist(ctx context.Context, grant *Grant) error {
	if err := c.store.Set(ctx, secrets.KeyAccessToken, grant.Token); err != nil {
		return err
	}
	if err := c.store.Set(ctx, secrets.KeyTokenSecret, grant.TokenSecret); err != nil {
		return err
	}
	userJSON, err := json.Marshal(grant.User)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, secrets.KeyCurrentUser, string(userJSON))
}

func (c *Client) clearStored(ctx context.Context) error {
	for _, key := range []string{secrets.KeyAccessToken, secrets.KeyTokenSecret, secrets.KeyCurrentUser} {
		if err := c.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
