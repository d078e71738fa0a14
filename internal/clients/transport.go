package clients

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 5 << 20

// Response is what a Transport hands back for one request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs the network I/O for a NetworkClient.
type Transport interface {
	Send(req *http.Request) (*Response, error)
}

// HTTPTransport sends requests with an *http.Client.
type HTTPTransport struct {
	http *http.Client
}

// NewHTTPTransport returns a Transport with sane dial and handshake timeouts.
// timeout bounds each request end to end; zero means no overall limit.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   5,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &HTTPTransport{http: &http.Client{Timeout: timeout, Transport: transport}}
}

// NewHTTPTransportWithClient wraps an existing client, e.g. one from httptest.
func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{http: client}
}

func (t *HTTPTransport) Send(req *http.Request) (*Response, error) {
	resp, err := t.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

var _ Transport = (*HTTPTransport)(nil)
