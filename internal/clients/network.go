package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const userAgent = "woodpantry-recipefetch/1.0"

// Method is an HTTP method understood by NetworkClient.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

func (m Method) carriesBody() bool {
	return m == MethodPost || m == MethodPut
}

// RequestObserver receives one observation per completed Request call.
type RequestObserver interface {
	ObserveRequest(endpoint, outcome string, elapsed time.Duration)
}

// NetworkClient resolves endpoints against a base URL and runs them through a Transport.
type NetworkClient struct {
	baseURL   string
	transport Transport
	logger    zerolog.Logger
	observer  RequestObserver
}

// ClientOption configures a NetworkClient.
type ClientOption func(*NetworkClient)

// WithBaseURL overrides BaseURL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *NetworkClient) { c.baseURL = baseURL }
}

func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *NetworkClient) { c.logger = logger.With().Str("component", "network_client").Logger() }
}

func WithObserver(observer RequestObserver) ClientOption {
	return func(c *NetworkClient) { c.observer = observer }
}

func NewNetworkClient(transport Transport, opts ...ClientOption) *NetworkClient {
	c := &NetworkClient{
		baseURL:   BaseURL,
		transport: transport,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// requestDescriptor describes a single call. It is built fresh per Request.
type requestDescriptor struct {
	method  Method
	params  map[string]any
	headers map[string]string
}

// RequestOption adjusts the descriptor of one Request call.
type RequestOption func(*requestDescriptor)

func WithMethod(m Method) RequestOption {
	return func(d *requestDescriptor) { d.method = m }
}

// WithParams sets the JSON body. It is only sent for POST and PUT.
func WithParams(params map[string]any) RequestOption {
	return func(d *requestDescriptor) { d.params = params }
}

// WithHeaders adds request headers. Later values win on key collision.
func WithHeaders(headers map[string]string) RequestOption {
	return func(d *requestDescriptor) {
		if d.headers == nil {
			d.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			d.headers[k] = v
		}
	}
}

// Request performs one call to endpoint and decodes a 2xx body into T.
//
// Errors are always one of ErrInvalidURL, ErrDecoding, *ServerError or
// *CustomError. There are no retries.
func Request[T any](ctx context.Context, c *NetworkClient, endpoint string, opts ...RequestOption) (T, error) {
	start := time.Now()
	out, err := request[T](ctx, c, endpoint, opts...)
	if c.observer != nil {
		c.observer.ObserveRequest(endpoint, ErrorKind(err), time.Since(start))
	}
	return out, err
}

func request[T any](ctx context.Context, c *NetworkClient, endpoint string, opts ...RequestOption) (T, error) {
	var zero T

	desc := requestDescriptor{method: MethodGet}
	for _, opt := range opts {
		opt(&desc)
	}

	target, err := resolve(c.baseURL, endpoint)
	if err != nil {
		return zero, err
	}

	var body io.Reader
	if desc.method.carriesBody() && desc.params != nil {
		payload, err := json.Marshal(desc.params)
		if err != nil {
			return zero, &CustomError{Message: fmt.Sprintf("encode request body: %v", err), Err: err}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, string(desc.method), target, body)
	if err != nil {
		return zero, &CustomError{Message: fmt.Sprintf("create request: %v", err), Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	for k, v := range desc.headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.transport.Send(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", req.Method).Str("url", target).Msg("transport failed")
		var customErr *CustomError
		if errors.As(err, &customErr) {
			return zero, err
		}
		return zero, &CustomError{Message: err.Error(), Err: err}
	}
	if resp == nil {
		return zero, &CustomError{Message: "No data or response"}
	}
	c.logger.Debug().
		Str("method", req.Method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, &ServerError{StatusCode: resp.StatusCode}
	}

	var out T
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		c.logger.Debug().Err(err).Str("url", target).Msg("decode response")
		return zero, ErrDecoding
	}
	return out, nil
}

// resolve joins baseURL and endpoint and checks the result is an absolute http(s) URL.
func resolve(baseURL, endpoint string) (string, error) {
	raw := baseURL + endpoint
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: must use HTTP or HTTPS", ErrInvalidURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return raw, nil
}
