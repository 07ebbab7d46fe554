package globals

import (
	"context"

	"bsprice-client/lib/api"
	"bsprice-client/lib/favorites"
	"bsprice-client/lib/session"
)

const key = "bsprice.ctx"

type Value struct {
	Client    *api.Client
	Session   *session.Store
	Favorites *favorites.Cache
}

func Set(ctx context.Context, value *Value) context.Context {
	return context.WithValue(ctx, key, value)
}

func Get(ctx context.Context) *Value {
	return ctx.Value(key).(*Value)
}
