package mock

import (
	"net/http/httptest"
)

// Server is a Backend served by an httptest.Server.
type Server struct {
	*httptest.Server
	Backend *Backend
	// BaseURL is the API root, {URL}/api/.
	BaseURL string
}

// NewHTTPTestServer starts a fake backend; callers must Close it.
func NewHTTPTestServer() (*Server, error) {
	backend, err := New()
	if err != nil {
		return nil, err
	}
	srv := httptest.NewServer(backend)
	return &Server{Server: srv, Backend: backend, BaseURL: srv.URL + "/api/"}, nil
}
