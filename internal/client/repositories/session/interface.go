// Package session persists the authenticated session as individual
// key-value pairs: the serialized user record and both tokens.
package session

import "context"

// Repository is the persistent key-value store backing the session.
// Get returns nil (no error) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
