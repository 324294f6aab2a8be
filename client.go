package leadsdesk

import (
	"github.com/rs/zerolog"
	"github.com/viant/leadsdesk/api"
	"github.com/viant/leadsdesk/config"
	"github.com/viant/leadsdesk/gateway"
	"github.com/viant/leadsdesk/router"
	"github.com/viant/leadsdesk/session"
	"net/http"
)

// Client bundles the API client with the navigation state sharing its credential store.
type Client struct {
	API     *api.Client
	Gateway *gateway.RoundTripper
	Router  *router.Router
	Store   session.Store
	Logger  zerolog.Logger
}

type ClientOption func(*clientOptions)

type clientOptions struct {
	store     session.Store
	logger    zerolog.Logger
	transport http.RoundTripper
}

// WithStore overrides the configured credential store
func WithStore(store session.Store) ClientOption {
	return func(o *clientOptions) {
		o.store = store
	}
}

// WithLogger sets logger
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithTransport sets the base transport
func WithTransport(transport http.RoundTripper) ClientOption {
	return func(o *clientOptions) {
		o.transport = transport
	}
}

// NewClient creates a client from cfg.
func NewClient(cfg *config.Config, options ...ClientOption) (*Client, error) {
	opts := &clientOptions{logger: zerolog.Nop(), transport: http.DefaultTransport}
	for _, opt := range options {
		opt(opts)
	}
	if opts.store == nil {
		opts.store = session.NewFileStore(cfg.Session.StoreURL)
	}
	nav := router.New(opts.store, router.WithLogger(opts.logger))
	refreshURL, err := api.RefreshURL(cfg.API.BaseURL)
	if err != nil {
		return nil, err
	}
	gw, err := gateway.New(
		gateway.WithStore(opts.store),
		gateway.WithTransport(opts.transport),
		gateway.WithRefreshURL(refreshURL),
		gateway.WithRefreshTimeout(cfg.API.RefreshTimeout),
		gateway.WithListener(nav),
		gateway.WithLogger(opts.logger),
	)
	if err != nil {
		return nil, err
	}
	return &Client{
		API:     api.New(cfg.API.BaseURL, gw),
		Gateway: gw,
		Router:  nav,
		Store:   opts.store,
		Logger:  opts.logger,
	}, nil
}
