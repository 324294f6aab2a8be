package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired is returned when a 401 could not be recovered by a refresh.
	ErrSessionExpired = errors.New("session expired, please login again")
	// ErrNoRefreshCredential indicates there was no refresh credential to exchange.
	ErrNoRefreshCredential = errors.New("no refresh credential")
	// ErrMalformedRefresh indicates a successful refresh response without a usable access credential.
	ErrMalformedRefresh = errors.New("malformed refresh response")
)

// RefreshError reports a non-200 response from the refresh endpoint.
type RefreshError struct {
	StatusCode int
	Body       []byte
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("refresh endpoint responded with %d: %s", e.StatusCode, e.Body)
}
