package gateway

import (
	"github.com/rs/zerolog"
	"github.com/viant/leadsdesk/session"
	"net/http"
	"time"
)

type Option func(*RoundTripper)

// WithStore sets the credential store
func WithStore(store session.Store) Option {
	return func(r *RoundTripper) {
		r.store = store
	}
}

// WithTransport sets the base transport used for dispatch and for the refresh exchange
func WithTransport(transport http.RoundTripper) Option {
	return func(r *RoundTripper) {
		r.transport = transport
	}
}

// WithRefreshURL sets the refresh endpoint used by the default refresher
func WithRefreshURL(URL string) Option {
	return func(r *RoundTripper) {
		r.refreshURL = URL
	}
}

// WithRefresher overrides the refresh exchange
func WithRefresher(refresher Refresher) Option {
	return func(r *RoundTripper) {
		r.refresher = refresher
	}
}

// WithListener sets the session-invalidated receiver
func WithListener(listener Listener) Option {
	return func(r *RoundTripper) {
		r.listener = listener
	}
}

// WithLogger sets logger
func WithLogger(logger zerolog.Logger) Option {
	return func(r *RoundTripper) {
		r.logger = logger
	}
}

// WithRefreshTimeout bounds the refresh exchange; zero leaves it bound by the request context only.
func WithRefreshTimeout(timeout time.Duration) Option {
	return func(r *RoundTripper) {
		r.refreshTimeout = timeout
	}
}
