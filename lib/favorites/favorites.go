// Package favorites keeps the logged-in user's favorite card ids in
// memory so the search view can paint stars without a network
// round-trip per card. The id set loads lazily on first read and is
// patched in place on add/remove rather than refetched.
package favorites

import (
	"context"
	"sync"

	"bsprice-client/lib/api"
	"bsprice-client/lib/session"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("lib/favorites")

type loadState int

const (
	notLoaded loadState = iota
	loading
	loaded
)

type Cache struct {
	client  *api.Client
	session *session.Store

	mu       sync.Mutex
	state    loadState
	ids      []int64
	inflight chan struct{}
	// gen invalidates a load that was racing a ClearCache
	gen uint64
}

func NewCache(client *api.Client) *Cache {
	return &Cache{
		client:  client,
		session: client.Session(),
	}
}

// Ids returns the favorite card ids, fetching and memoizing on first
// use. Concurrent first reads collapse into a single network call, the
// rest wait for it. Logged out it is always empty.
func (c *Cache) Ids(ctx context.Context) ([]int64, error) {
	if !c.session.IsLoggedIn(ctx) {
		return nil, nil
	}

	ctx, span := tracer.Start(ctx, "Ids")
	defer span.End()

	for {
		c.mu.Lock()
		switch c.state {
		case loaded:
			ids := append([]int64(nil), c.ids...)
			c.mu.Unlock()
			return ids, nil

		case loading:
			wait := c.inflight
			c.mu.Unlock()
			select {
			case <-wait:
			case <-ctx.Done():
				return nil, ctx.Err()
			}

		default:
			c.state = loading
			c.inflight = make(chan struct{})
			wait := c.inflight
			gen := c.gen
			c.mu.Unlock()

			ids, err := c.client.FavoriteIds(ctx)

			c.mu.Lock()
			if c.gen == gen {
				if err != nil {
					c.state = notLoaded
				} else {
					c.state = loaded
					c.ids = ids
				}
			}
			c.mu.Unlock()
			close(wait)

			if err != nil {
				return nil, err
			}
			return append([]int64(nil), ids...), nil
		}
	}
}

// All returns the full favorite records. Never cached, always hits the
// network.
func (c *Cache) All(ctx context.Context) ([]api.Favorite, error) {
	if !c.session.IsLoggedIn(ctx) {
		return nil, nil
	}
	return c.client.Favorites(ctx)
}

func (c *Cache) Add(ctx context.Context, cardId int64) error {
	if !c.session.IsLoggedIn(ctx) {
		return nil
	}
	err := c.client.AddFavorite(ctx, cardId)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.state == loaded {
		c.ids = append(c.ids, cardId)
	}
	c.mu.Unlock()
	return nil
}

func (c *Cache) Remove(ctx context.Context, cardId int64) error {
	if !c.session.IsLoggedIn(ctx) {
		return nil
	}
	err := c.client.RemoveFavorite(ctx, cardId)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.state == loaded {
		kept := c.ids[:0]
		for _, id := range c.ids {
			if id != cardId {
				kept = append(kept, id)
			}
		}
		c.ids = kept
	}
	c.mu.Unlock()
	return nil
}

// Toggle flips membership and reports the new state. The read and the
// write are separate requests, so two concurrent toggles of the same
// card can race; single-user single-view usage makes that acceptable.
func (c *Cache) Toggle(ctx context.Context, cardId int64) (nowFavorite bool, err error) {
	isFav, err := c.IsFavorite(ctx, cardId)
	if err != nil {
		return false, err
	}
	if isFav {
		return false, c.Remove(ctx, cardId)
	}
	return true, c.Add(ctx, cardId)
}

func (c *Cache) IsFavorite(ctx context.Context, cardId int64) (bool, error) {
	ids, err := c.Ids(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == cardId {
			return true, nil
		}
	}
	return false, nil
}

// ClearCache forces the next Ids call to refetch. Must be called on
// logout.
func (c *Cache) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.state = notLoaded
	c.ids = nil
}
