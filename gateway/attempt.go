package gateway

import (
	"bytes"
	"fmt"
	"github.com/google/uuid"
	"io"
	"net/http"
)

// Attempt retains an outbound call long enough to replay it after the access
// credential was renewed. Retried is the one-shot marker: it is set before the
// replay and never reset.
type Attempt struct {
	ID      string
	Request *http.Request
	Retried bool
	body    []byte
}

// NewAttempt clones req and buffers its body so the call can be dispatched twice.
// The caller's request is never mutated; its body is consumed and closed.
func NewAttempt(req *http.Request) (*Attempt, error) {
	ret := &Attempt{ID: uuid.NewString(), Request: req.Clone(req.Context())}
	if req.Body != nil && req.Body != http.NoBody {
		data, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to buffer request body: %w", err)
		}
		ret.body = data
	}
	ret.Request.Body = nil
	ret.Request.GetBody = nil
	return ret, nil
}

// request returns a fresh dispatchable copy of the retained request.
func (a *Attempt) request() *http.Request {
	ret := a.Request.Clone(a.Request.Context())
	if a.body == nil {
		return ret
	}
	body := a.body
	ret.Body = io.NopCloser(bytes.NewReader(body))
	ret.ContentLength = int64(len(body))
	ret.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	return ret
}
