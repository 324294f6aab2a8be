package router

import (
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/viant/leadsdesk/session"
	"strings"
	"sync"
)

// ErrRouteNotFound is returned when a path matches no route.
var ErrRouteNotFound = errors.New("route not found")

const maxRedirects = 4

// Router resolves navigation intents, applies the guard and tracks the current location.
type Router struct {
	mu      sync.RWMutex
	routes  map[string]*Route
	guard   *Guard
	logger  zerolog.Logger
	current *Route
	history []string
}

type Option func(*Router)

// WithRoutes replaces the default route table
func WithRoutes(routes []*Route) Option {
	return func(r *Router) {
		r.routes = indexRoutes(routes)
	}
}

// WithLogger sets logger
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

func New(store session.Store, options ...Option) *Router {
	ret := &Router{routes: indexRoutes(Routes()), logger: zerolog.Nop()}
	for _, opt := range options {
		opt(ret)
	}
	ret.guard = NewGuard(store, ret.logger)
	return ret
}

func indexRoutes(routes []*Route) map[string]*Route {
	ret := make(map[string]*Route, len(routes))
	for _, route := range routes {
		ret[route.Path] = route
	}
	return ret
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i != -1 {
		path = path[:i]
	}
	if path == "" {
		return HomePath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// Lookup returns the route registered for path.
func (r *Router) Lookup(path string) (*Route, bool) {
	route, ok := r.routes[normalize(path)]
	return route, ok
}

// Guard returns the route access guard
func (r *Router) Guard() *Guard {
	return r.guard
}

// Push navigates to path, following guard redirects, and returns the route navigation ended on.
func (r *Router) Push(ctx context.Context, path string) (*Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.push(ctx, path)
}

func (r *Router) push(ctx context.Context, path string) (*Route, error) {
	target := path
	for i := 0; i <= maxRedirects; i++ {
		to, ok := r.Lookup(target)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrRouteNotFound, target)
		}
		decision := r.guard.Evaluate(ctx, to, r.current)
		if decision.Proceed() {
			r.current = to
			r.history = append(r.history, to.Path)
			return to, nil
		}
		r.logger.Debug().Str("to", to.Path).Str("decision", decision.String()).Msg("navigation redirected")
		target = decision.Redirect
	}
	return nil, fmt.Errorf("too many redirects navigating to %v", path)
}

// Current returns the route of the last completed navigation.
func (r *Router) Current() *Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// History returns paths of completed navigations, oldest first.
func (r *Router) History() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.history...)
}

// SessionInvalidated forces navigation to the login route, discarding history.
func (r *Router) SessionInvalidated(ctx context.Context, cause error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger.Warn().Err(cause).Msg("session invalidated, redirecting to login")
	r.current = nil
	r.history = nil
	if _, err := r.push(ctx, LoginPath); err != nil {
		r.logger.Error().Err(err).Msg("failed to navigate to login")
	}
}
