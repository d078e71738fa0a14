// Package clientstest provides a programmable clients.Transport for tests.
package clientstest

import (
	"net/http"
	"sync"

	"github.com/mwhite7112/woodpantry-recipefetch/internal/clients"
)

// Transport returns a fixed body, status and error without touching the network.
// With no body configured it fails the way a transport with nothing to return does.
type Transport struct {
	mu         sync.Mutex
	body       []byte
	statusCode int
	err        error
	requests   []*http.Request
}

func New() *Transport {
	return &Transport{statusCode: http.StatusOK}
}

// Respond sets the status and body returned by every following Send.
func (t *Transport) Respond(statusCode int, body string) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.statusCode = statusCode
	t.body = []byte(body)
	t.err = nil
	return t
}

// Fail makes every following Send return err.
func (t *Transport) Fail(err error) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.err = err
	return t
}

func (t *Transport) Send(req *http.Request) (*clients.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requests = append(t.requests, req)

	if t.err != nil {
		return nil, t.err
	}
	if t.body == nil {
		return nil, &clients.CustomError{Message: "No data or response"}
	}
	body := make([]byte, len(t.body))
	copy(body, t.body)
	return &clients.Response{StatusCode: t.statusCode, Header: http.Header{}, Body: body}, nil
}

// Requests returns every request seen so far, oldest first.
func (t *Transport) Requests() []*http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*http.Request, len(t.requests))
	copy(out, t.requests)
	return out
}

// LastRequest returns the most recent request, or nil.
func (t *Transport) LastRequest() *http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.requests) == 0 {
		return nil
	}
	return t.requests[len(t.requests)-1]
}

var _ clients.Transport = (*Transport)(nil)
