package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go-sitepass/internal/auth"
	"go-sitepass/internal/shared/apperror"
	"go-sitepass/internal/shared/clock"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultMaxRetries     = 2
	DefaultRetryDelay     = time.Second
	DefaultRequestTimeout = 15 * time.Second
	DefaultRefreshTimeout = 10 * time.Second

	refreshPath = apiPrefix + "/auth/refresh"
	refreshKey  = "refresh"
)

// Credentials is the access/refresh pair a Gateway carries.
type Credentials struct {
	AccessToken     string
	AccessExpiresAt time.Time
	RefreshToken    string
}

func (c Credentials) empty() bool {
	return c.AccessToken == "" && c.RefreshToken == ""
}

// Request describes one API call. Body is JSON encoded once and replayed on
// retries.
type Request struct {
	Method    string
	Path      string
	Body      any
	Header    http.Header
	Anonymous bool
}

// Envelope mirrors the server response envelope with Data left raw.
type Envelope struct {
	Ok       bool            `json:"ok"`
	Data     json.RawMessage `json:"data,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`
	Error    *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details,omitempty"`
	} `json:"error,omitempty"`
}

type Option func(*Gateway)

func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.http = c }
}

func WithClock(c clock.Clock) Option {
	return func(g *Gateway) { g.clock = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Gateway) { g.logger = l.Named("session.gateway") }
}

// WithRetry sets how many times a transport failure is retried and the
// fixed delay between attempts.
func WithRetry(maxRetries int, delay time.Duration) Option {
	return func(g *Gateway) {
		g.maxRetries = maxRetries
		g.retryDelay = delay
	}
}

func WithRefreshTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.refreshTimeout = d }
}

// OnCredentialsChanged is called after every refresh and after the
// credentials are cleared, so callers can persist them.
func OnCredentialsChanged(fn func(Credentials)) Option {
	return func(g *Gateway) { g.onChange = fn }
}

// Gateway is an API client that shares one credential pair between any
// number of concurrent calls and refreshes it at most once at a time.
type Gateway struct {
	baseURL string
	http    *http.Client
	clock   clock.Clock
	logger  *zap.Logger

	maxRetries     int
	retryDelay     time.Duration
	refreshTimeout time.Duration
	onChange       func(Credentials)

	mu    sync.RWMutex
	creds Credentials
	sf    singleflight.Group
}

func New(baseURL string, creds Credentials, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           &http.Client{Timeout: DefaultRequestTimeout},
		clock:          clock.System(),
		logger:         zap.L().Named("session.gateway"),
		maxRetries:     DefaultMaxRetries,
		retryDelay:     DefaultRetryDelay,
		refreshTimeout: DefaultRefreshTimeout,
		creds:          creds,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) Credentials() Credentials {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.creds
}

// SetCredentials replaces the pair, for example after a login.
func (g *Gateway) SetCredentials(c Credentials) {
	g.mu.Lock()
	g.creds = c
	g.mu.Unlock()
	g.notify(c)
}

func (g *Gateway) Clear() {
	g.SetCredentials(Credentials{})
}

func (g *Gateway) notify(c Credentials) {
	if g.onChange != nil {
		g.onChange(c)
	}
}

// Do sends req and returns the decoded envelope of a 2xx answer. An expired
// access token is refreshed first, and a TOKEN_EXPIRED answer triggers one
// refresh and one replay. A replay refused as expired again ends the session.
// Any other non-2xx answer comes back as *APIError.
func (g *Gateway) Do(ctx context.Context, req Request) (*Envelope, error) {
	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}
	if req.Anonymous {
		return g.send(ctx, req, body, "")
	}

	creds := g.Credentials()
	if creds.empty() {
		return nil, ErrNotAuthenticated
	}
	if creds.AccessToken == "" || (!creds.AccessExpiresAt.IsZero() && clock.Expired(g.clock, creds.AccessExpiresAt)) {
		if creds, err = g.refresh(ctx, creds.AccessToken); err != nil {
			return nil, err
		}
	}

	env, err := g.send(ctx, req, body, creds.AccessToken)
	if !IsCode(err, apperror.CodeTokenExpired) {
		return env, err
	}

	creds, err = g.refresh(ctx, creds.AccessToken)
	if err != nil {
		return nil, err
	}
	env, err = g.send(ctx, req, body, creds.AccessToken)
	if IsCode(err, apperror.CodeTokenExpired) {
		// a freshly issued token refused as expired will not recover by
		// refreshing again
		g.logger.Warn("refreshed token refused, clearing session", zap.String("path", req.Path))
		g.Clear()
		return nil, fmt.Errorf("%w: %w", ErrSessionInvalidated, err)
	}
	return env, err
}

// refresh returns credentials newer than the ones carrying staleAccess. If
// another caller already rotated them it returns those without a round trip;
// otherwise it joins or starts the single in-flight refresh. The refresh
// itself runs detached from ctx so a caller that gives up does not cancel it
// for the others.
func (g *Gateway) refresh(ctx context.Context, staleAccess string) (Credentials, error) {
	current := g.Credentials()
	if current.RefreshToken == "" {
		return Credentials{}, ErrSessionInvalidated
	}
	if current.AccessToken != "" && current.AccessToken != staleAccess {
		return current, nil
	}

	ch := g.sf.DoChan(refreshKey, func() (any, error) {
		// a refresh that finished between the check above and this flight
		// already rotated the pair
		latest := g.Credentials()
		if latest.RefreshToken == "" {
			return Credentials{}, ErrSessionInvalidated
		}
		if latest.AccessToken != "" && latest.AccessToken != staleAccess {
			return latest, nil
		}
		return g.doRefresh(latest.RefreshToken)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return Credentials{}, res.Err
		}
		return res.Val.(Credentials), nil
	case <-ctx.Done():
		return Credentials{}, ctx.Err()
	}
}

func (g *Gateway) doRefresh(refreshToken string) (Credentials, error) {
	ctx, cancel := context.WithTimeout(context.Background(), g.refreshTimeout)
	defer cancel()

	req := Request{
		Method:    http.MethodPost,
		Path:      refreshPath,
		Anonymous: true,
		Header:    http.Header{"X-Client-Type": []string{"MOBILE"}},
	}
	body, _ := encodeBody(auth.RefreshRequest{RefreshToken: refreshToken})

	env, err := g.send(ctx, req, body, "")
	var tokens auth.TokenResponse
	if err == nil {
		err = json.Unmarshal(env.Data, &tokens)
	}
	if err == nil && tokens.AccessToken == "" {
		err = errors.New("refresh answered without an access token")
	}
	if err != nil {
		g.logger.Warn("refresh failed, clearing session", zap.Error(err))
		g.Clear()
		return Credentials{}, fmt.Errorf("%w: %w", ErrSessionInvalidated, err)
	}

	next := Credentials{
		AccessToken:     tokens.AccessToken,
		AccessExpiresAt: tokens.AccessExpiresAt,
		RefreshToken:    tokens.RefreshToken,
	}
	if next.RefreshToken == "" {
		next.RefreshToken = refreshToken
	}
	g.SetCredentials(next)
	g.logger.Debug("session refreshed", zap.Time("access_expires_at", next.AccessExpiresAt))
	return next, nil
}

type httpResult struct {
	status int
	body   []byte
}

// send performs one logical call. Transport failures (no response) are
// retried with a fixed delay, as is a 409 PROCESSING answer for a key that is
// still in flight. Any other HTTP answer ends the retry loop.
func (g *Gateway) send(ctx context.Context, req Request, body []byte, accessToken string) (*Envelope, error) {
	var last httpResult
	op := func() (httpResult, error) {
		httpReq, err := g.newHTTPRequest(ctx, req, body, accessToken)
		if err != nil {
			return httpResult{}, backoff.Permanent(err)
		}
		resp, err := g.http.Do(httpReq)
		if err != nil {
			if ctx.Err() != nil {
				return httpResult{}, backoff.Permanent(ctx.Err())
			}
			g.logger.Debug("transport failure, retrying",
				zap.String("path", req.Path),
				zap.Error(err),
			)
			return httpResult{}, err
		}
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return httpResult{}, err
		}
		res := httpResult{status: resp.StatusCode, body: raw}
		if stillProcessing(res) {
			// the same idempotency key is in flight, its answer will replay
			last = res
			g.logger.Debug("request still processing, retrying", zap.String("path", req.Path))
			return httpResult{}, errStillProcessing
		}
		return res, nil
	}

	res, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewConstantBackOff(g.retryDelay)),
		backoff.WithMaxTries(uint(g.maxRetries+1)),
	)
	if errors.Is(err, errStillProcessing) {
		return decodeEnvelope(last)
	}
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(res)
}

var errStillProcessing = errors.New("request still processing")

func stillProcessing(res httpResult) bool {
	if res.status != http.StatusConflict {
		return false
	}
	var env Envelope
	if err := json.Unmarshal(res.body, &env); err != nil || env.Error == nil {
		return false
	}
	return env.Error.Code == apperror.CodeProcessing
}

func (g *Gateway) newHTTPRequest(ctx context.Context, req Request, body []byte, accessToken string) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, g.baseURL+req.Path, reader)
	if err != nil {
		return nil, err
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	}
	return httpReq, nil
}

func encodeBody(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return raw, nil
}

func decodeEnvelope(res httpResult) (*Envelope, error) {
	var env Envelope
	if len(res.body) > 0 {
		if err := json.Unmarshal(res.body, &env); err != nil && res.status < 300 {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	if res.status >= 200 && res.status < 300 {
		return &env, nil
	}
	apiErr := &APIError{Status: res.status, Code: apperror.CodeInternalError, Message: http.StatusText(res.status)}
	if env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
		apiErr.Details = env.Error.Details
	}
	return nil, apiErr
}
