package gateway

import (
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/viant/leadsdesk/session"
	"golang.org/x/oauth2"
	"io"
	"net/http"
	"sync"
	"time"
)

const (
	authorizationHeader = "Authorization"
	maxBodySize         = 1 << 20
)

type RoundTripper struct {
	store          session.Store
	refresher      Refresher
	refreshURL     string
	listener       Listener
	transport      http.RoundTripper
	logger         zerolog.Logger
	refreshTimeout time.Duration
	mux            sync.RWMutex
	defaults       http.Header
}

func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		store:     session.NewMemoryStore(),
		listener:  nopListener{},
		logger:    zerolog.Nop(),
		defaults:  http.Header{},
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.refresher == nil {
		if ret.refreshURL == "" {
			return nil, errors.New("gateway: refresh URL was empty")
		}
		// the exchange runs on the base transport so a 401 there is never intercepted
		ret.refresher = NewTokenRefresher(ret.refreshURL, &http.Client{Transport: ret.transport})
	}
	return ret, nil
}

func (r *RoundTripper) Store() session.Store {
	return r.store
}

// Transport returns the base, non-intercepted transport.
func (r *RoundTripper) Transport() http.RoundTripper {
	return r.transport
}

// DefaultHeader returns a copy of headers applied to every outbound call.
func (r *RoundTripper) DefaultHeader() http.Header {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.defaults.Clone()
}

// SetDefaultHeader sets a header applied to every outbound call that does not set it itself.
func (r *RoundTripper) SetDefaultHeader(key, value string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.defaults.Set(key, value)
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	attempt, err := NewAttempt(req)
	if err != nil {
		return nil, err
	}
	return r.Send(attempt)
}

// Send dispatches the attempt; a first 401 triggers one refresh-and-replay cycle.
func (r *RoundTripper) Send(attempt *Attempt) (*http.Response, error) {
	ctx := attempt.Request.Context()
	req := attempt.request()
	r.applyDefaults(req)
	token, err := session.Token(ctx, r.store)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}
	if token != nil {
		token.SetAuthHeader(req)
	} else {
		req.Header.Del(authorizationHeader)
	}

	resp, err := r.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || attempt.Retried {
		return resp, nil
	}
	attempt.Retried = true
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
	_ = resp.Body.Close()

	log := r.logger.With().Str("attempt", attempt.ID).Str("method", req.Method).Str("url", req.URL.String()).Logger()
	log.Debug().Msg("access credential rejected, refreshing")
	refreshed, err := r.refresh(ctx)
	if err != nil {
		log.Error().Err(err).Msg("session expired, please login again")
		r.invalidate(ctx, err)
		return nil, fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	header := refreshed.Type() + " " + refreshed.AccessToken
	r.SetDefaultHeader(authorizationHeader, header)
	attempt.Request.Header.Set(authorizationHeader, header)
	log.Debug().Msg("access credential refreshed, replaying")
	return r.Send(attempt)
}

func (r *RoundTripper) refresh(ctx context.Context) (*oauth2.Token, error) {
	refreshToken, err := session.RefreshToken(ctx, r.store)
	if err != nil {
		return nil, err
	}
	if refreshToken == "" {
		return nil, ErrNoRefreshCredential
	}
	exchangeCtx := ctx
	if r.refreshTimeout > 0 {
		var cancel context.CancelFunc
		exchangeCtx, cancel = context.WithTimeout(ctx, r.refreshTimeout)
		defer cancel()
	}
	token, err := r.refresher.Refresh(exchangeCtx, refreshToken)
	if err != nil {
		return nil, err
	}
	if token == nil || token.AccessToken == "" {
		return nil, ErrMalformedRefresh
	}
	if err = session.Save(ctx, r.store, token); err != nil {
		return nil, fmt.Errorf("failed to store refreshed credential: %w", err)
	}
	return token, nil
}

// Logout removes both credentials and the default Authorization header without
// signalling the listener.
func (r *RoundTripper) Logout(ctx context.Context) error {
	r.clearAuthorization()
	return session.Clear(ctx, r.store)
}

func (r *RoundTripper) clearAuthorization() {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.defaults.Del(authorizationHeader)
}

// invalidate removes both credentials together and signals the listener.
func (r *RoundTripper) invalidate(ctx context.Context, cause error) {
	if err := session.Clear(ctx, r.store); err != nil {
		r.logger.Error().Err(err).Msg("failed to clear credentials")
	}
	r.clearAuthorization()
	r.listener.SessionInvalidated(ctx, cause)
}

func (r *RoundTripper) applyDefaults(req *http.Request) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	for key, values := range r.defaults {
		if req.Header.Get(key) != "" {
			continue
		}
		req.Header[key] = append([]string(nil), values...)
	}
}
