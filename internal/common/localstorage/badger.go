package localstorage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

type badgerStorage[T any] struct {
	db     *badger.DB
	bucket string
	pathDB string
}

type badgerOptions struct {
	dir      string
	inMemory bool
}

type BadgerOption func(*badgerOptions)

// WithDir sets the parent directory of the database, os.TempDir() by default.
func WithDir(dir string) BadgerOption {
	return func(o *badgerOptions) { o.dir = dir }
}

// WithInMemory keeps the database in memory only.
func WithInMemory(inMemory bool) BadgerOption {
	return func(o *badgerOptions) { o.inMemory = inMemory }
}

// NewBadgerStorage opens a badger database at <dir>/<bucket>.
func NewBadgerStorage[T any](bucket string, opts ...BadgerOption) (LocalStorage[T], error) {
	o := &badgerOptions{dir: os.TempDir()}
	for _, opt := range opts {
		opt(o)
	}

	pathDB := path.Join(o.dir, bucket)
	bopts := badger.DefaultOptions(pathDB)
	if o.inMemory {
		pathDB = ""
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	bopts.Logger = nil

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("failed to open localstorage %s: %w", bucket, err)
	}

	return &badgerStorage[T]{
		db:     db,
		bucket: bucket,
		pathDB: pathDB,
	}, nil
}

func (b badgerStorage[T]) Get(_ context.Context, key string) (T, error) {
	var val T
	var rawVal []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(bucketKey(b.bucket, key)))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}

		rawVal, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return val, fmt.Errorf("failed to get value from localstorage: %w", err)
	}

	if rawVal == nil {
		return val, nil
	}

	err = Unmarshal(rawVal, &val)
	if err != nil {
		return val, fmt.Errorf("failed to unmarshal value from localstorage: %w", err)
	}

	return val, nil
}

func (b badgerStorage[T]) Set(_ context.Context, key string, value T) error {
	rawVal, err := Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(bucketKey(b.bucket, key)), rawVal)
	})
	if err != nil {
		return fmt.Errorf("failed to set value to localstorage: %w", err)
	}

	return nil
}

func (b badgerStorage[T]) Delete(_ context.Context, key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(bucketKey(b.bucket, key)))
	})
	if err != nil {
		return fmt.Errorf("failed to delete value from localstorage: %w", err)
	}

	return nil
}

func (b badgerStorage[T]) Clean(_ context.Context) error {
	if err := b.db.DropPrefix([]byte(bucketKey(b.bucket, ""))); err != nil {
		return fmt.Errorf("failed to clean localstorage: %w", err)
	}
	return nil
}

func (b badgerStorage[T]) Close() error {
	return b.db.Close()
}

func (b badgerStorage[T]) ForEach(ctx context.Context, f func(key string, value T) error) error {
	prefix := []byte(bucketKey(b.bucket, ""))
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := it.Item()
			k := strings.TrimPrefix(string(item.Key()), string(prefix))
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}

			var val T
			err = Unmarshal(v, &val)
			if err != nil {
				return fmt.Errorf("failed to unmarshal value: %w", err)
			}

			err = f(k, val)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to iterate over localstorage: %w", err)
	}

	return nil
}
