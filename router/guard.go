package router

import (
	"context"
	"github.com/rs/zerolog"
	"github.com/viant/leadsdesk/session"
)

// Decision is the guard outcome: proceed when Redirect is empty.
type Decision struct {
	Redirect string
}

// Proceed reports whether navigation may complete.
func (d Decision) Proceed() bool {
	return d.Redirect == ""
}

func (d Decision) String() string {
	if d.Proceed() {
		return "proceed"
	}
	return "redirect(" + d.Redirect + ")"
}

// Evaluate decides navigation to `to`. from is accepted for symmetry with
// navigation hooks; current rules do not depend on it.
func Evaluate(to, from *Route, authenticated bool) Decision {
	switch {
	case to.RequiresAuth && !authenticated:
		return Decision{Redirect: LoginPath}
	case to.Path == LoginPath && authenticated:
		return Decision{Redirect: HomePath}
	}
	return Decision{}
}

// Guard evaluates navigation against the credential store.
type Guard struct {
	store  session.Store
	logger zerolog.Logger
}

// Authenticated reports presence of a non-empty access credential. The
// credential is not validated; a store read error counts as absent.
func (g *Guard) Authenticated(ctx context.Context) bool {
	access, err := session.AccessToken(ctx, g.store)
	if err != nil {
		g.logger.Warn().Err(err).Msg("failed to read access credential")
		return false
	}
	return access != ""
}

func (g *Guard) Evaluate(ctx context.Context, to, from *Route) Decision {
	return Evaluate(to, from, g.Authenticated(ctx))
}

func NewGuard(store session.Store, logger zerolog.Logger) *Guard {
	return &Guard{store: store, logger: logger}
}
