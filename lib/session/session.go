// Package session persists the login state of the current user: an
// opaque bearer token and a cached profile, both living in keyv
// storage under well-known keys.
//
// Nothing here returns an error. Storage failures and corrupt
// persisted state both degrade to "absent", the same way the original
// frontend treated a missing or garbled localStorage entry.
package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"bsprice-client/lib/keyv"
)

const (
	tokenKey = "card_price_token"
	userKey  = "card_price_user"
)

const RoleAdmin = "admin"

type User struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

type Store struct {
	kv keyv.Store
}

func NewStore(kv keyv.Store) *Store {
	return &Store{kv: kv}
}

func (s *Store) SetToken(ctx context.Context, token string) {
	err := s.kv.Set(ctx, tokenKey, token)
	if err != nil {
		slog.WarnContext(ctx, "failed to persist token", "err", err)
	}
}

// Token returns the persisted bearer token, or "" when logged out.
func (s *Store) Token(ctx context.Context) string {
	token, ok, err := s.kv.Get(ctx, tokenKey)
	if err != nil {
		slog.DebugContext(ctx, "failed to read token", "err", err)
		return ""
	}
	if !ok {
		return ""
	}
	return token
}

// RemoveToken clears the token and the cached profile together. A
// profile without a token must never be trusted.
func (s *Store) RemoveToken(ctx context.Context) {
	err := s.kv.Delete(ctx, tokenKey)
	if err != nil {
		slog.WarnContext(ctx, "failed to delete token", "err", err)
	}
	err = s.kv.Delete(ctx, userKey)
	if err != nil {
		slog.WarnContext(ctx, "failed to delete cached user", "err", err)
	}
}

func (s *Store) SetUser(ctx context.Context, user User) {
	serialized, err := json.Marshal(user)
	if err != nil {
		slog.WarnContext(ctx, "failed to serialize user", "err", err)
		return
	}
	err = s.kv.Set(ctx, userKey, string(serialized))
	if err != nil {
		slog.WarnContext(ctx, "failed to persist user", "err", err)
	}
}

// User returns the cached profile. Malformed persisted data reads as
// absent rather than failing.
func (s *Store) User(ctx context.Context) (User, bool) {
	serialized, ok, err := s.kv.Get(ctx, userKey)
	if err != nil {
		slog.DebugContext(ctx, "failed to read cached user", "err", err)
		return User{}, false
	}
	if !ok {
		return User{}, false
	}
	var user User
	err = json.Unmarshal([]byte(serialized), &user)
	if err != nil {
		slog.DebugContext(ctx, "corrupt cached user", "err", err)
		return User{}, false
	}
	return user, true
}

func (s *Store) IsLoggedIn(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

func (s *Store) IsAdmin(ctx context.Context) bool {
	user, ok := s.User(ctx)
	return ok && user.Role == RoleAdmin
}
