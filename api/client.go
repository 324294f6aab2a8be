package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/viant/leadsdesk/gateway"
	"github.com/viant/leadsdesk/session"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	tokenPath    = "token/"
	refreshPath  = "token/refresh/"
	registerPath = "register/"
)

// Client talks to the backend under baseURL (the /api/ prefix included).
type Client struct {
	baseURL    string
	gateway    *gateway.RoundTripper
	httpClient *http.Client
	plain      *http.Client

	Leads      *Resource[Lead]
	FollowUps  *Resource[FollowUp]
	Meetings   *Resource[Meeting]
	Quotations *Resource[Quotation]
	Deals      *Resource[Deal]
	Users      *Resource[User]
	Activities *Resource[Activity]
}

// RefreshURL returns the refresh endpoint for baseURL.
func RefreshURL(baseURL string) (string, error) {
	return url.JoinPath(normalizeBase(baseURL), refreshPath)
}

func normalizeBase(baseURL string) string {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL
}

// New creates a client; resource calls go through gw, auth calls through gw's base transport.
func New(baseURL string, gw *gateway.RoundTripper) *Client {
	ret := &Client{
		baseURL:    normalizeBase(baseURL),
		gateway:    gw,
		httpClient: &http.Client{Transport: gw},
		plain:      &http.Client{Transport: gw.Transport()},
	}
	ret.Leads = NewResource[Lead](ret, "leads")
	ret.FollowUps = NewResource[FollowUp](ret, "followups")
	ret.Meetings = NewResource[Meeting](ret, "meetings")
	ret.Quotations = NewResource[Quotation](ret, "quotations")
	ret.Deals = NewResource[Deal](ret, "deals")
	ret.Users = NewResource[User](ret, "users")
	ret.Activities = NewResource[Activity](ret, "activities")
	return ret
}

// BaseURL returns the API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Store returns the credential store shared with the gateway
func (c *Client) Store() session.Store {
	return c.gateway.Store()
}

// HTTPClient returns the intercepted client, for calls this package does not model.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Do sends an authenticated JSON call to path relative to the base URL.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	return c.do(ctx, c.httpClient, method, path, in, out)
}

func (c *Client) do(ctx context.Context, client *http.Client, method, path string, in, out any) error {
	URL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return err
	}
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode %v request: %w", path, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, URL, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Method: method, URL: URL, StatusCode: resp.StatusCode, Body: data}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		return nil
	}
	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %v %v response: %w", method, URL, err)
	}
	return nil
}
