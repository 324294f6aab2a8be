package api

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/leadsdesk/gateway"
	"github.com/viant/leadsdesk/mock"
	"github.com/viant/leadsdesk/router"
	"github.com/viant/leadsdesk/session"
	"net/http"
	"strings"
	"sync"
	"testing"
)

type fixture struct {
	server *mock.Server
	store  session.Store
	router *router.Router
	client *Client
}

func newFixture(t *testing.T, options ...gateway.Option) *fixture {
	srv, err := mock.NewHTTPTestServer()
	require.NoError(t, err)
	t.Cleanup(srv.Close)
	srv.Backend.AddUser("admin", "secret", "admin@example.com")

	store := session.NewMemoryStore()
	nav := router.New(store)
	refreshURL, err := RefreshURL(srv.BaseURL)
	require.NoError(t, err)
	options = append([]gateway.Option{gateway.WithStore(store), gateway.WithRefreshURL(refreshURL), gateway.WithListener(nav)}, options...)
	gw, err := gateway.New(options...)
	require.NoError(t, err)
	return &fixture{server: srv, store: store, router: nav, client: New(srv.BaseURL, gw)}
}

func TestRefreshURL(t *testing.T) {
	URL, err := RefreshURL("http://127.0.0.1:8000/api")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000/api/token/refresh/", URL)
}

func TestClient_Login(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.client.Login(ctx, "admin", "wrong")
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, 0, f.server.Backend.RefreshCalls())
	token, err := f.client.Token(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)

	token, err = f.client.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	stored, err := f.client.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, token.AccessToken, stored.AccessToken)
	assert.Equal(t, token.RefreshToken, stored.RefreshToken)

	claims, err := ParseClaims(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.TokenType)
	assert.NotNil(t, claims.ExpiresAt)

	route, err := f.router.Push(ctx, router.LoginPath)
	require.NoError(t, err)
	assert.Equal(t, router.HomePath, route.Path)

	require.NoError(t, f.client.Logout(ctx))
	route, err = f.router.Push(ctx, "/leads")
	require.NoError(t, err)
	assert.Equal(t, router.LoginPath, route.Path)
}

func TestClient_Register(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user, err := f.client.Register(ctx, &User{Username: "sales", Password: "pass", Email: "sales@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Empty(t, user.Password)

	_, err = f.client.Login(ctx, "sales", "pass")
	require.NoError(t, err)
}

func TestResource_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.client.Login(ctx, "admin", "secret")
	require.NoError(t, err)

	lead, err := f.client.Leads.Create(ctx, &Lead{
		Property: "Hotel Melati",
		GpPIC:    "Andi",
		DateIn:   "2024-05-01",
		PICs:     []*LeadPIC{{PICName: "Budi", Email: "budi@example.com"}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, lead.LeadID)
	require.Len(t, lead.PICs, 1)
	assert.NotZero(t, lead.PICs[0].ID)
	assert.NotEmpty(t, lead.CreatedAt)
	assert.NotEmpty(t, lead.EditedAt)

	lead.StatusKanban = StatusFollowUp
	updated, err := f.client.Leads.Update(ctx, lead.LeadID, lead)
	require.NoError(t, err)
	assert.Equal(t, StatusFollowUp, updated.StatusKanban)
	assert.Equal(t, lead.CreatedAt, updated.CreatedAt)

	patched, err := f.client.Leads.Patch(ctx, lead.LeadID, map[string]any{"status_kanban": StatusDeals})
	require.NoError(t, err)
	assert.Equal(t, StatusDeals, patched.StatusKanban)
	assert.Equal(t, "Hotel Melati", patched.Property)

	deal, err := f.client.Deals.Create(ctx, &Deal{
		Lead:     lead.LeadID,
		DealBy:   "Andi",
		DealType: DealNew,
		Room:     40,
		Details:  []*DealDetail{{Package: "Pro", ProductInitiation: "PMS, Channel Manager", ProductInitiationAmountBy: "Month"}},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^D-`, deal.DealID)
	require.Len(t, deal.Details, 1)
	assert.Regexp(t, `^DD-`, deal.Details[0].DealDetailID)

	leads, err := f.client.Leads.List(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)

	users, err := f.client.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].Password)

	require.NoError(t, f.client.Leads.Delete(ctx, lead.LeadID))
	_, err = f.client.Leads.Get(ctx, lead.LeadID)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, 0, f.server.Backend.RefreshCalls())
}

func TestClient_TransparentRefresh(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	token, err := f.client.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	_, err = f.router.Push(ctx, "/leads")
	require.NoError(t, err)

	f.server.Backend.ExpireAccessTokens()
	activity, err := f.client.Activities.Create(ctx, &Activity{Title: "Call Hotel Melati", Date: "2024-05-02"})
	require.NoError(t, err)
	assert.NotZero(t, activity.ID)
	assert.Equal(t, 1, f.server.Backend.RefreshCalls())

	stored, err := f.client.Token(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, token.AccessToken, stored.AccessToken)
	assert.Equal(t, token.RefreshToken, stored.RefreshToken)
	assert.Equal(t, "/leads", f.router.Current().Path)
}

func TestClient_SessionExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.client.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	_, err = f.router.Push(ctx, "/dealing-property")
	require.NoError(t, err)

	f.server.Backend.ExpireAccessTokens()
	f.server.Backend.RevokeRefreshTokens()
	_, err = f.client.Deals.List(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gateway.ErrSessionExpired))
	var refreshErr *gateway.RefreshError
	require.True(t, errors.As(err, &refreshErr))
	assert.Equal(t, http.StatusUnauthorized, refreshErr.StatusCode)

	token, err := f.client.Token(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)
	_, hasRefresh, err := f.store.Get(ctx, session.RefreshTokenKey)
	require.NoError(t, err)
	assert.False(t, hasRefresh)
	assert.Equal(t, router.LoginPath, f.router.Current().Path)
	assert.Equal(t, []string{router.LoginPath}, f.router.History())
}

func TestClient_UnauthenticatedCall(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.client.Meetings.List(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gateway.ErrNoRefreshCredential))
	assert.Equal(t, 0, f.server.Backend.RefreshCalls())
	assert.Equal(t, router.LoginPath, f.router.Current().Path)
}

// headerRecorder remembers the Authorization header of every dispatched call.
type headerRecorder struct {
	mu    sync.Mutex
	calls [][2]string
}

func (h *headerRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	h.mu.Lock()
	h.calls = append(h.calls, [2]string{req.URL.Path, req.Header.Get("Authorization")})
	h.mu.Unlock()
	return http.DefaultTransport.RoundTrip(req)
}

func (h *headerRecorder) last(suffix string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := len(h.calls) - 1; i >= 0; i-- {
		if strings.HasSuffix(h.calls[i][0], suffix) {
			return h.calls[i][1]
		}
	}
	return "<none>"
}

func TestClient_SessionLifecycleAfterRefresh(t *testing.T) {
	recorder := &headerRecorder{}
	f := newFixture(t, gateway.WithTransport(recorder))
	ctx := context.Background()
	_, err := f.client.Register(ctx, &User{Username: "sales", Password: "pass", Email: "sales@example.com"})
	require.NoError(t, err)

	_, err = f.client.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	f.server.Backend.ExpireAccessTokens()
	_, err = f.client.Leads.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, f.server.Backend.RefreshCalls())
	refreshed, err := f.client.Token(ctx)
	require.NoError(t, err)

	sales, err := f.client.Login(ctx, "sales", "pass")
	require.NoError(t, err)
	require.NotEqual(t, refreshed.AccessToken, sales.AccessToken)
	_, err = f.client.Leads.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+sales.AccessToken, recorder.last("/leads/"))

	require.NoError(t, f.client.Logout(ctx))
	assert.Empty(t, f.client.gateway.DefaultHeader().Get("Authorization"))
	_, err = f.client.Leads.List(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gateway.ErrNoRefreshCredential))
	assert.Equal(t, "", recorder.last("/leads/"))
	assert.Equal(t, 1, f.server.Backend.RefreshCalls())
	assert.Equal(t, router.LoginPath, f.router.Current().Path)
}
