// Package apiclient performs authenticated requests against the clients backend and
// decodes its result envelope.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/pkg/config"
	"github.com/samandr77/microservices/dashboard/pkg/transport"
)

const (
	defaultTimeout      = time.Second * 10
	defaultRetryWaitMin = time.Millisecond * 200
	defaultRetryWaitMax = time.Second * 2
)

// Envelope wraps every backend response. Consumers project Result.
type Envelope[T any] struct {
	Result  T      `json:"result"`
	Message string `json:"message,omitempty"`
}

// Body is a request payload. It is byte-backed so a retried request can be replayed.
type Body interface {
	ContentType() string
	Bytes() []byte
}

type Client struct {
	client  *http.Client
	baseURL string
}

func New(cfg config.ClientsAPI) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = timeout
	retryClient.HTTPClient.Transport = newTransport(cfg)
	retryClient.Logger = nil

	// Only transport failures are retried; any HTTP status goes back to the caller as is.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			if errors.Is(err, transport.ErrCircuitOpen) {
				return false, nil
			}

			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

func newTransport(cfg config.ClientsAPI) http.RoundTripper {
	var rt http.RoundTripper = http.DefaultTransport

	if cfg.BreakerThreshold > 0 {
		rt = transport.NewBreakerRoundTripper("clients-api", cfg.BreakerThreshold, cfg.BreakerTimeout, rt)
	}

	return transport.NewLoggingRoundTripper(rt)
}

func Get[T any](ctx context.Context, c *Client, path string, params url.Values) (Envelope[T], error) {
	return do[T](ctx, c, http.MethodGet, path, params, nil)
}

func Post[T any](ctx context.Context, c *Client, path string, body Body, params url.Values) (Envelope[T], error) {
	return do[T](ctx, c, http.MethodPost, path, params, body)
}

func Put[T any](ctx context.Context, c *Client, path string, body Body, params url.Values) (Envelope[T], error) {
	return do[T](ctx, c, http.MethodPut, path, params, body)
}

func Delete[T any](ctx context.Context, c *Client, path string, params url.Values) (Envelope[T], error) {
	return do[T](ctx, c, http.MethodDelete, path, params, nil)
}

func do[T any](ctx context.Context, c *Client, method, path string, params url.Values, body Body) (Envelope[T], error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body.Bytes())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return Envelope[T]{}, fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", body.ContentType())
	}

	req.Header.Set("Accept", "application/json")

	token, err := entity.TokenFromContext(ctx)
	if err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Envelope[T]{}, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope[T]{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Envelope[T]{}, newError(method, path, resp.StatusCode, data)
	}

	var envelope Envelope[T]

	if len(bytes.TrimSpace(data)) == 0 {
		return envelope, nil
	}

	err = json.Unmarshal(data, &envelope)
	if err != nil {
		return Envelope[T]{}, fmt.Errorf("decode response: %w", err)
	}

	return envelope, nil
}

// Error is a non-2xx answer of the clients backend.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: unexpected status code %d", e.Method, e.Path, e.StatusCode)
	}

	return fmt.Sprintf("%s %s: unexpected status code %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return entity.ErrBadRequest
	case http.StatusUnauthorized:
		return entity.ErrUnauthorized
	case http.StatusForbidden:
		return entity.ErrForbidden
	case http.StatusNotFound:
		return entity.ErrNotFound
	default:
		return nil
	}
}

func newError(method, path string, code int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}

	msg := ""
	if json.Unmarshal(body, &payload) == nil {
		msg = payload.Message
	}

	return &Error{
		Method:     method,
		Path:       path,
		StatusCode: code,
		Message:    msg,
	}
}

// StatusCode extracts the backend status from err, or 0 when err did not come from the backend.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}
