package session

import (
	"context"
	"golang.org/x/oauth2"
	"sync"
)

const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// Store is a process-wide key-value persistence layer for the credential pair.
// Writes replace whole values; there is no transaction across keys except that
// Delete removes all given keys in one mutation.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// Token returns the stored credential pair, or nil when no access credential is stored.
func Token(ctx context.Context, store Store) (*oauth2.Token, error) {
	access, err := value(ctx, store, AccessTokenKey)
	if err != nil || access == "" {
		return nil, err
	}
	refresh, err := value(ctx, store, RefreshTokenKey)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: access, RefreshToken: refresh, TokenType: "Bearer"}, nil
}

// AccessToken returns the stored access credential or an empty string.
func AccessToken(ctx context.Context, store Store) (string, error) {
	return value(ctx, store, AccessTokenKey)
}

// RefreshToken returns the stored refresh credential or an empty string.
func RefreshToken(ctx context.Context, store Store) (string, error) {
	return value(ctx, store, RefreshTokenKey)
}

// Save persists both credentials. An empty refresh credential keeps the stored one.
func Save(ctx context.Context, store Store, token *oauth2.Token) error {
	if err := store.Set(ctx, AccessTokenKey, token.AccessToken); err != nil {
		return err
	}
	if token.RefreshToken == "" {
		return nil
	}
	return store.Set(ctx, RefreshTokenKey, token.RefreshToken)
}

// Clear removes both credentials together.
func Clear(ctx context.Context, store Store) error {
	return store.Delete(ctx, AccessTokenKey, RefreshTokenKey)
}

func value(ctx context.Context, store Store, key string) (string, error) {
	v, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return "", err
	}
	return v, nil
}

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func (m *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

type MemoryStoreOption func(*memoryStore)

// WithToken seeds the store with a credential pair.
func WithToken(token *oauth2.Token) MemoryStoreOption {
	return func(m *memoryStore) {
		if token.AccessToken != "" {
			m.values[AccessTokenKey] = token.AccessToken
		}
		if token.RefreshToken != "" {
			m.values[RefreshTokenKey] = token.RefreshToken
		}
	}
}

func NewMemoryStore(options ...MemoryStoreOption) Store {
	ret := &memoryStore{values: map[string]string{}}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
