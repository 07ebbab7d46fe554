// Package keyv is the client's persistent key-value storage, the
// equivalent of the browser's localStorage. Consumers depend on the
// Store interface so tests can swap the durable store for an in-memory
// one.
package keyv

import "context"

type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
