package localstorage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const redisScanCount = 100

type redisStorage[T any] struct {
	redis  *redis.Client
	bucket string
}

// NewRedisStorage stores values under "<bucket>:<key>" without expiry.
// The client is shared between buckets and is closed by its owner, not by Close.
func NewRedisStorage[T any](client *redis.Client, bucket string) LocalStorage[T] {
	return &redisStorage[T]{redis: client, bucket: bucket}
}

func (r redisStorage[T]) Get(ctx context.Context, key string) (result T, err error) {
	val, err := r.redis.Get(ctx, bucketKey(r.bucket, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return result, nil
		}
		return result, fmt.Errorf("failed to get value from localstorage: %w", err)
	}

	if err = Unmarshal(val, &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal value from localstorage: %w", err)
	}

	return result, nil
}

func (r redisStorage[T]) Set(ctx context.Context, key string, value T) error {
	val, err := Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err = r.redis.Set(ctx, bucketKey(r.bucket, key), val, 0).Err(); err != nil {
		return fmt.Errorf("failed to set value to localstorage: %w", err)
	}

	return nil
}

func (r redisStorage[T]) Delete(ctx context.Context, key string) error {
	if err := r.redis.Del(ctx, bucketKey(r.bucket, key)).Err(); err != nil {
		return fmt.Errorf("failed to delete value from localstorage: %w", err)
	}
	return nil
}

func (r redisStorage[T]) ForEach(ctx context.Context, f func(key string, value T) error) error {
	prefix := bucketKey(r.bucket, "")

	return r.scan(ctx, func(keys []string) error {
		for _, k := range keys {
			raw, err := r.redis.Get(ctx, k).Bytes()
			if err != nil {
				if errors.Is(err, redis.Nil) {
					continue
				}
				return fmt.Errorf("failed to iterate over localstorage: %w", err)
			}

			var val T
			if err = Unmarshal(raw, &val); err != nil {
				return fmt.Errorf("failed to unmarshal value: %w", err)
			}

			if err = f(strings.TrimPrefix(k, prefix), val); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r redisStorage[T]) Clean(ctx context.Context) error {
	return r.scan(ctx, func(keys []string) error {
		if len(keys) == 0 {
			return nil
		}
		if err := r.redis.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to clean localstorage: %w", err)
		}
		return nil
	})
}

func (r redisStorage[T]) Close() error {
	return nil
}

func (r redisStorage[T]) scan(ctx context.Context, f func(keys []string) error) error {
	var cursor uint64
	match := bucketKey(r.bucket, "*")
	for {
		keys, next, err := r.redis.Scan(ctx, cursor, match, redisScanCount).Result()
		if err != nil {
			return fmt.Errorf("failed to scan localstorage: %w", err)
		}

		if err = f(keys); err != nil {
			return err
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
