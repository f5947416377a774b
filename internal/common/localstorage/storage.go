package localstorage

import (
	"context"
	"encoding/json"
	"errors"
)

// LocalStorage is the durable key/value store behind the persistent cache and the session state.
// Values are JSON encoded, keys are namespaced by bucket.
type LocalStorage[T any] interface {
	// Get retrieves data from localstorage
	// If key is not found, it will return empty value
	Get(ctx context.Context, key string) (T, error)

	// Set is used to store data to localstorage
	Set(ctx context.Context, key string, value T) error

	// Delete is used to delete data from localstorage, deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// ForEach is used to iterate all data in the bucket
	ForEach(ctx context.Context, f func(key string, value T) error) error

	// Close is used to close the storage
	Close() error

	// Clean is used to remove all data in the bucket
	Clean(ctx context.Context) error
}

type (
	// MarshalFunc define
	MarshalFunc func(v any) ([]byte, error)

	// UnmarshalFunc define
	UnmarshalFunc func(data []byte, v any) error
)

var (
	Marshal   MarshalFunc   = json.Marshal
	Unmarshal UnmarshalFunc = json.Unmarshal
)

var ErrClosed = errors.New("localstorage is closed")

func bucketKey(bucket, key string) string {
	return bucket + ":" + key
}
