package contract

import "context"

// ILocalStore is the client-side string key/value state.
// Get returns ErrKeyNotFound when the key has no value.
type ILocalStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Keys lists stored keys starting with prefix in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
