package mock

import (
	"crypto/rand"
	"github.com/gorilla/mux"
	"net/http"
	"sync/atomic"
	"time"
)

// Backend is the fake backend state and its HTTP handler.
type Backend struct {
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// RefreshHandler, when set, replaces the refresh endpoint (calls are still counted).
	RefreshHandler http.HandlerFunc

	secret       []byte
	accessGen    atomic.Int64
	refreshGen   atomic.Int64
	refreshCalls atomic.Int64
	ids          atomic.Int64
	seq          atomic.Int64
	tables       map[string]*table
	router       *mux.Router
}

// New creates an empty backend.
func New() (*Backend, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	ret := &Backend{
		AccessTTL:  5 * time.Minute,
		RefreshTTL: 24 * time.Hour,
		secret:     secret,
	}
	ret.tables = ret.newTables()
	ret.router = ret.newRouter()
	return ret, nil
}

func (b *Backend) newRouter() *mux.Router {
	router := mux.NewRouter()
	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/token/", b.obtainHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/token/refresh/", b.refreshHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/register/", b.registerHandler).Methods(http.MethodPost)

	protected := apiRouter.PathPrefix("/{resource:leads|followups|meetings|quotations|deals|users|activities}").Subrouter()
	protected.Use(b.authenticate)
	protected.HandleFunc("/", b.listHandler).Methods(http.MethodGet)
	protected.HandleFunc("/", b.createHandler).Methods(http.MethodPost)
	protected.HandleFunc("/{id}/", b.getHandler).Methods(http.MethodGet)
	protected.HandleFunc("/{id}/", b.updateHandler).Methods(http.MethodPut, http.MethodPatch)
	protected.HandleFunc("/{id}/", b.deleteHandler).Methods(http.MethodDelete)
	return router
}

func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

// ExpireAccessTokens invalidates every access token issued so far.
func (b *Backend) ExpireAccessTokens() {
	b.accessGen.Add(1)
}

// RevokeRefreshTokens invalidates every refresh token issued so far.
func (b *Backend) RevokeRefreshTokens() {
	b.refreshGen.Add(1)
}

// RefreshCalls returns the number of refresh endpoint calls.
func (b *Backend) RefreshCalls() int {
	return int(b.refreshCalls.Load())
}
