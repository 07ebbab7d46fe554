package api

import (
	"context"
	"log/slog"

	"bsprice-client/lib/session"

	"go.opentelemetry.io/otel/codes"
)

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (c *Client) exchangeCredentials(ctx context.Context, path string, body any, fallback string) (AuthResponse, error) {
	res, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return AuthResponse{}, err
	}
	if res.IsError() {
		return AuthResponse{}, serverError(res, fallback)
	}

	var auth AuthResponse
	err = decode(res, &auth)
	if err != nil {
		return AuthResponse{}, err
	}

	c.session.SetToken(ctx, auth.AccessToken)
	// the token was just proven valid server-side, so a flaky follow-up
	// profile fetch must not discard it
	c.FetchCurrentUser(ctx, false)

	return auth, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (AuthResponse, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	auth, err := c.exchangeCredentials(ctx, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, "ログインに失敗しました")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "login failed")
	}
	return auth, err
}

func (c *Client) Register(ctx context.Context, username, email, password string) (AuthResponse, error) {
	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	auth, err := c.exchangeCredentials(ctx, "/api/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, "登録に失敗しました")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "register failed")
	}
	return auth, err
}

func (c *Client) AdminRegister(ctx context.Context, username, email, password, inviteCode string) (AuthResponse, error) {
	ctx, span := tracer.Start(ctx, "AdminRegister")
	defer span.End()

	auth, err := c.exchangeCredentials(ctx, "/api/auth/admin-register", map[string]string{
		"username":    username,
		"email":       email,
		"password":    password,
		"invite_code": inviteCode,
	}, "管理者登録に失敗しました")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "admin register failed")
	}
	return auth, err
}

// FetchCurrentUser hydrates the cached profile from /api/auth/me.
//
// removeTokenOnError controls what a rejected token does: session
// restoration on page load passes true so a stale token gets purged,
// while the post-login hydration passes false so a transient failure
// cannot discard a token that was just issued. Transport errors never
// clear the token either way.
func (c *Client) FetchCurrentUser(ctx context.Context, removeTokenOnError bool) (session.User, bool) {
	ctx, span := tracer.Start(ctx, "FetchCurrentUser")
	defer span.End()

	if c.session.Token(ctx) == "" {
		return session.User{}, false
	}

	res, err := c.authRequest(ctx).Get("/api/auth/me")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch user")
		slog.DebugContext(ctx, "failed to fetch current user", "err", err)
		return session.User{}, false
	}
	if res.IsError() {
		if removeTokenOnError {
			c.session.RemoveToken(ctx)
		}
		span.SetStatus(codes.Error, "profile fetch rejected")
		return session.User{}, false
	}

	var user session.User
	err = decode(res, &user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected profile payload")
		return session.User{}, false
	}

	c.session.SetUser(ctx, user)
	return user, true
}

// Logout clears the session and navigates to the site root. There is
// no server call: token invalidation, if any, is the backend's
// concern.
func (c *Client) Logout(ctx context.Context) {
	c.session.RemoveToken(ctx)
	c.nav.NavigateTo("/")
}
