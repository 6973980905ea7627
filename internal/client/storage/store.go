package storage

import "context"

type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error

	// GetOrCreate returns the stored value, or stores and returns create()
	// when the key is absent. The read and the write are atomic.
	GetOrCreate(ctx context.Context, key string, create func() string) (string, error)
}
