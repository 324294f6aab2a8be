package api

import (
	"context"
	"errors"
	"github.com/viant/leadsdesk/session"
	"golang.org/x/oauth2"
	"net/http"
)

type obtainRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type obtainResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login exchanges username and password for a credential pair and stores it.
func (c *Client) Login(ctx context.Context, username, password string) (*oauth2.Token, error) {
	var out obtainResponse
	if err := c.do(ctx, c.plain, http.MethodPost, tokenPath, &obtainRequest{Username: username, Password: password}, &out); err != nil {
		return nil, err
	}
	if out.Access == "" || out.Refresh == "" {
		return nil, errors.New("token endpoint returned an incomplete credential pair")
	}
	token := &oauth2.Token{AccessToken: out.Access, RefreshToken: out.Refresh, TokenType: "Bearer"}
	if err := session.Save(ctx, c.Store(), token); err != nil {
		return nil, err
	}
	return token, nil
}

// Logout removes both stored credentials and the gateway's default Authorization header.
func (c *Client) Logout(ctx context.Context) error {
	return c.gateway.Logout(ctx)
}

// Register creates an account through the public sign-up endpoint.
func (c *Client) Register(ctx context.Context, user *User) (*User, error) {
	out := &User{}
	if err := c.do(ctx, c.plain, http.MethodPost, registerPath, user, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Token returns the stored credential pair, nil when logged out.
func (c *Client) Token(ctx context.Context) (*oauth2.Token, error) {
	return session.Token(ctx, c.Store())
}
