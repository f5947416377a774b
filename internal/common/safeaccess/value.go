package safeaccess

import (
	"sync"
)

// Value guards a single value shared between goroutines.
type Value[T any] struct {
	guard sync.RWMutex
	data  T
	set   bool
}

func New[T any](data T) *Value[T] {
	return &Value[T]{
		data: data,
		set:  true,
	}
}

func (v *Value[T]) Load() T {
	v.guard.RLock()
	item := v.data
	v.guard.RUnlock()

	return item
}

// LoadOK returns the value and whether it was ever stored since the last Reset.
func (v *Value[T]) LoadOK() (T, bool) {
	v.guard.RLock()
	defer v.guard.RUnlock()

	return v.data, v.set
}

func (v *Value[T]) Store(data T) {
	v.guard.Lock()
	v.data = data
	v.set = true
	v.guard.Unlock()
}

func (v *Value[T]) Reset() {
	var zero T

	v.guard.Lock()
	v.data = zero
	v.set = false
	v.guard.Unlock()
}
