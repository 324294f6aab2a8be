package router

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/leadsdesk/session"
	"golang.org/x/oauth2"
	"testing"
)

func TestRouter_Push(t *testing.T) {
	testCases := []struct {
		description string
		token       *oauth2.Token
		path        string
		expectPath  string
		expectErr   error
	}{
		{description: "anonymous to leads", token: &oauth2.Token{}, path: "/leads", expectPath: LoginPath},
		{description: "anonymous to home", token: &oauth2.Token{}, path: "", expectPath: LoginPath},
		{description: "authenticated to leads with trailing slash", token: &oauth2.Token{AccessToken: "a"}, path: "/leads/", expectPath: "/leads"},
		{description: "authenticated to login", token: &oauth2.Token{AccessToken: "a"}, path: "/login", expectPath: HomePath},
		{description: "authenticated to users with query", token: &oauth2.Token{AccessToken: "a"}, path: "/users?page=2", expectPath: "/users"},
		{description: "unknown path", token: &oauth2.Token{AccessToken: "a"}, path: "/reports", expectErr: ErrRouteNotFound},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			r := New(session.NewMemoryStore(session.WithToken(testCase.token)))
			route, err := r.Push(context.Background(), testCase.path)
			if testCase.expectErr != nil {
				assert.ErrorIs(t, err, testCase.expectErr)
				assert.Nil(t, r.Current())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectPath, route.Path)
			assert.Equal(t, route, r.Current())
		})
	}
}

func TestRouter_RedirectLoop(t *testing.T) {
	routes := []*Route{
		{Path: LoginPath, RequiresAuth: true},
	}
	r := New(session.NewMemoryStore(), WithRoutes(routes))
	_, err := r.Push(context.Background(), LoginPath)
	assert.Error(t, err)
}

func TestRouter_SessionInvalidated(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore(session.WithToken(&oauth2.Token{AccessToken: "a", RefreshToken: "r"}))
	r := New(store)
	_, err := r.Push(ctx, "/leads")
	require.NoError(t, err)
	_, err = r.Push(ctx, "/users")
	require.NoError(t, err)
	assert.Equal(t, []string{"/leads", "/users"}, r.History())

	require.NoError(t, session.Clear(ctx, store))
	r.SessionInvalidated(ctx, errors.New("refresh rejected"))
	assert.Equal(t, LoginPath, r.Current().Path)
	assert.Equal(t, []string{LoginPath}, r.History())
}
