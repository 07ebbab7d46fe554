// Package api is the typed client for the BSPrice backend. It owns the
// transport concerns the original frontend kept in Auth.authFetch:
// attaching the bearer token, the global 401 handler, and turning
// server error payloads into messages fit for display.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bsprice-client/lib/session"
	"bsprice-client/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("lib/api")

// ErrAuthRequired is returned by authenticated calls that hit a 401.
// By the time a caller sees it the session is already cleared and the
// navigator pointed at the login view, so the response body is never
// surfaced.
var ErrAuthRequired = errors.New("認証が必要です")

// Navigator is the window.location of this client: the surface that
// gets told to move somewhere else. The CLI prints the destination,
// tests record it.
type Navigator interface {
	NavigateTo(path string)
}

type NopNavigator struct{}

func (NopNavigator) NavigateTo(path string) {}

type Options struct {
	BaseUrl   string
	Session   *session.Store
	Navigator Navigator
}

type Client struct {
	http    *resty.Client
	session *session.Store
	nav     Navigator
	baseUrl string
}

func NewClient(opts Options) *Client {
	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetHeader("accept", "application/json")

	telemetry.InstrumentResty(client, "bsprice-http")

	nav := opts.Navigator
	if nav == nil {
		nav = NopNavigator{}
	}

	return &Client{
		http:    client,
		session: opts.Session,
		nav:     nav,
		baseUrl: opts.BaseUrl,
	}
}

func (c *Client) Session() *session.Store {
	return c.session
}

// request is a plain unauthenticated request, the original's bare
// fetch().
func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

// authRequest attaches the bearer header when a token exists and omits
// it otherwise. The unauthenticated request is still attempted.
func (c *Client) authRequest(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	token := c.session.Token(ctx)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// checkAuth implements the global 401 handler: clear the session, send
// the user to the login view, and fail the operation. Every other
// status passes through untouched for the caller to inspect.
func (c *Client) checkAuth(ctx context.Context, res *resty.Response) error {
	if res.StatusCode() == 401 {
		c.session.RemoveToken(ctx)
		c.nav.NavigateTo("/login")
		return ErrAuthRequired
	}
	return nil
}

type ServerError struct {
	StatusCode int
	Detail     string
}

func (e *ServerError) Error() string {
	return e.Detail
}

// serverError derives a display message from a non-2xx response: the
// JSON error payload's detail field when present, a localized fallback
// otherwise.
func serverError(res *resty.Response, fallback string) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	detail := fallback
	err := json.Unmarshal(res.Body(), &payload)
	if err == nil && payload.Detail != "" {
		detail = payload.Detail
	}
	return &ServerError{
		StatusCode: res.StatusCode(),
		Detail:     detail,
	}
}

func decode(res *resty.Response, out any) error {
	err := json.Unmarshal(res.Body(), out)
	if err != nil {
		return fmt.Errorf("unexpected response body: %w", err)
	}
	return nil
}
