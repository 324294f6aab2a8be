package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"golang.org/x/oauth2"
	"io"
	"net/http"
)

// Refresher exchanges a refresh credential for a new access credential.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

// RefreshFunc adapts a function to Refresher.
type RefreshFunc func(ctx context.Context, refreshToken string) (*oauth2.Token, error)

func (f RefreshFunc) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	return f(ctx, refreshToken)
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// TokenRefresher posts {"refresh": ...} to URL. Only status 200 with a non-empty
// "access" field counts as success; a rotated "refresh" is passed through when present.
type TokenRefresher struct {
	URL    string
	client *http.Client
}

func (t *TokenRefresher) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	payload, err := json.Marshal(&refreshRequest{Refresh: refreshToken})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("refresh exchange failed: %w", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read refresh response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &RefreshError{StatusCode: resp.StatusCode, Body: data}
	}
	var out refreshResponse
	if err = json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRefresh, err)
	}
	if out.Access == "" {
		return nil, fmt.Errorf("%w: missing access credential", ErrMalformedRefresh)
	}
	return &oauth2.Token{AccessToken: out.Access, RefreshToken: out.Refresh, TokenType: "Bearer"}, nil
}

// NewTokenRefresher creates a refresher; client should not carry the gateway itself.
func NewTokenRefresher(URL string, client *http.Client) *TokenRefresher {
	if client == nil {
		client = &http.Client{Transport: http.DefaultTransport}
	}
	return &TokenRefresher{URL: URL, client: client}
}
