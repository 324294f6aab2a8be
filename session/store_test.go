package session

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"os"
	"path/filepath"
	"testing"
)

func TestStores(t *testing.T) {
	testCases := []struct {
		description string
		newStore    func(t *testing.T) Store
	}{
		{
			description: "memory",
			newStore: func(t *testing.T) Store {
				return NewMemoryStore()
			},
		},
		{
			description: "file",
			newStore: func(t *testing.T) Store {
				return NewFileStore(filepath.Join(t.TempDir(), "session.json"))
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			ctx := context.Background()
			store := testCase.newStore(t)

			token, err := Token(ctx, store)
			require.NoError(t, err)
			assert.Nil(t, token)

			require.NoError(t, Save(ctx, store, &oauth2.Token{AccessToken: "a1", RefreshToken: "r1"}))
			token, err = Token(ctx, store)
			require.NoError(t, err)
			require.NotNil(t, token)
			assert.Equal(t, "a1", token.AccessToken)
			assert.Equal(t, "r1", token.RefreshToken)
			assert.Equal(t, "Bearer", token.Type())

			// access-only save keeps the refresh credential
			require.NoError(t, Save(ctx, store, &oauth2.Token{AccessToken: "a2"}))
			refresh, err := RefreshToken(ctx, store)
			require.NoError(t, err)
			assert.Equal(t, "r1", refresh)

			require.NoError(t, Clear(ctx, store))
			_, hasAccess, err := store.Get(ctx, AccessTokenKey)
			require.NoError(t, err)
			_, hasRefresh, err := store.Get(ctx, RefreshTokenKey)
			require.NoError(t, err)
			assert.False(t, hasAccess)
			assert.False(t, hasRefresh)
		})
	}
}

func TestFileStore_Reload(t *testing.T) {
	ctx := context.Background()
	location := filepath.Join(t.TempDir(), "nested", "session.json")

	first := NewFileStore(location)
	require.NoError(t, Save(ctx, first, &oauth2.Token{AccessToken: "access", RefreshToken: "refresh"}))

	second := NewFileStore(location)
	access, err := AccessToken(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "access", access)
	refresh, err := RefreshToken(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refresh)
}

func TestFileStore_SaveReplacesDocument(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	location := filepath.Join(dir, "session.json")

	store := NewFileStore(location)
	require.NoError(t, Save(ctx, store, &oauth2.Token{AccessToken: "access-1", RefreshToken: "refresh"}))
	require.NoError(t, Save(ctx, store, &oauth2.Token{AccessToken: "access-2"}))

	info, err := os.Stat(location)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "session.json", entries[0].Name())

	reloaded := NewFileStore(location)
	token, err := Token(ctx, reloaded)
	require.NoError(t, err)
	assert.Equal(t, &oauth2.Token{AccessToken: "access-2", RefreshToken: "refresh", TokenType: "Bearer"}, token)

	require.NoError(t, Clear(ctx, reloaded))
	token, err = Token(ctx, NewFileStore(location))
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestMemoryStore_WithToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(WithToken(&oauth2.Token{AccessToken: "a"}))
	access, err := AccessToken(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, "a", access)
	_, ok, err := store.Get(ctx, RefreshTokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
