// Package api is the HTTP client of the curriculum API. It implements
// curriculum.Backend.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"learnhub/config"
	"learnhub/curriculum"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Client talks to the curriculum API with a bearer token
type Client struct {
	http *resty.Client
}

var _ curriculum.Backend = (*Client)(nil)

// New returns a client for baseURL. Every request carries token and a fresh
// X-Request-ID unless the context supplies one.
func New(baseURL, token string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		id, _ := r.Context().Value(requestIDKey{}).(string)
		if id == "" {
			id = uuid.NewString()
		}
		r.SetHeader("X-Request-ID", id)
		return nil
	})

	return &Client{http: rc}
}

// NewFromConfig builds a client from API_BASE_URL and API_TIMEOUT_SECONDS
func NewFromConfig(cfg *config.Config, token string) *Client {
	return New(cfg.APIBaseURL, token, time.Duration(cfg.APITimeoutSeconds)*time.Second)
}

type requestIDKey struct{}

// WithRequestID makes requests issued with ctx carry id as X-Request-ID
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// StatusError is a non-2xx response. Fields holds the per-field messages of a
// 422 validation failure.
type StatusError struct {
	Code    int
	Message string
	Fields  map[string]string
}

func (e *StatusError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("api: %d %s %v", e.Code, e.Message, e.Fields)
	}
	return fmt.Sprintf("api: %d %s", e.Code, e.Message)
}

// NotFound reports whether the resource did not exist
func (e *StatusError) NotFound() bool { return e.Code == http.StatusNotFound }

// envelope is the {status, message, data} wrapper of every response
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do sends one request and decodes the envelope's data into out
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	var env envelope
	if err := sonic.Unmarshal(resp.Body(), &env); err != nil {
		if resp.IsError() {
			return &StatusError{Code: resp.StatusCode(), Message: resp.Status()}
		}
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}

	if resp.IsError() || !env.Status {
		se := &StatusError{Code: resp.StatusCode(), Message: env.Message}
		if resp.StatusCode() == http.StatusUnprocessableEntity && len(env.Data) > 0 {
			_ = sonic.Unmarshal(env.Data, &se.Fields)
		}
		return se
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := sonic.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}
	return nil
}
