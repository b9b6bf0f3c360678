// Package store persists planner state in a key/value backend. Reads never
// fail (a missing or corrupt value yields the caller's default) and writes
// report success instead of returning errors.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// ErrWatchUnsupported is returned by Watch for backends without change
// notification.
var ErrWatchUnsupported = errors.New("store: backend does not support watch")

// Store is the fault-tolerant adapter over a KV backend.
type Store struct {
	kv           KV
	log          *zap.Logger
	onWriteFault func(key string, err error)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for read and write faults.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithWriteFaultHandler registers the user-visible warning channel for
// failed writes.
func WithWriteFaultHandler(fn func(key string, err error)) Option {
	return func(s *Store) {
		s.onWriteFault = fn
	}
}

// New wraps kv.
func New(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get decodes the value at key, returning def when it is missing or cannot be
// decoded. Decode failures are logged, never returned.
func Get[T any](s *Store, key string, def T) T {
	data, err := s.kv.Read(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Debug("read fault", zap.String("key", key), zap.Error(err))
		}
		return def
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.Debug("read fault", zap.String("key", key), zap.Error(err))
		return def
	}
	return v
}

// Set encodes and writes value. On failure the fault handler is invoked and
// false is returned.
func (s *Store) Set(key string, value any) bool {
	data, err := json.Marshal(value)
	if err == nil {
		err = s.kv.Write(key, data)
	}
	if err != nil {
		s.log.Warn("write fault", zap.String("key", key), zap.Error(err))
		if s.onWriteFault != nil {
			s.onWriteFault(key, err)
		}
		return false
	}
	return true
}

// Delete erases key, reporting failures like Set.
func (s *Store) Delete(key string) bool {
	if err := s.kv.Erase(key); err != nil {
		s.log.Warn("write fault", zap.String("key", key), zap.Error(err))
		if s.onWriteFault != nil {
			s.onWriteFault(key, err)
		}
		return false
	}
	return true
}

// Has reports whether key holds a value.
func (s *Store) Has(key string) bool {
	return s.kv.Has(key)
}

// Keys lists stored keys in lexical order.
func (s *Store) Keys(ctx context.Context) []string {
	return s.kv.Keys(ctx)
}

// Watch streams change events when the backend supports it.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.kv.(interface {
		Watch(ctx context.Context) (<-chan Event, error)
	})
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return w.Watch(ctx)
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.kv.Close()
}
