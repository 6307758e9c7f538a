// Package storage provides the persistent key-value substrate used by the
// configuration and preset stores. Values are opaque strings; no schema
// semantics live here.
package storage

import "context"

// KV is the storage adapter boundary. Get reports absence through the bool
// instead of an error so callers can treat a missing key as an empty store.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
