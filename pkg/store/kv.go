package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Persisted keys.
const (
	// KeyLegacyMeals is the single-week plan written by earlier versions.
	KeyLegacyMeals = "mealPlan"
	KeyHistory     = "mealPlanHistory"
	KeyShopping    = "shoppingList"
	KeyFavorites   = "favorites"
	KeyDarkMode    = "darkMode"

	mealsPrefix = "meals-"
)

// MealsKey is the partition key for one week's meals.
func MealsKey(weekKey string) string {
	return mealsPrefix + weekKey
}

// ErrNotFound is returned by KV.Read for a missing key.
var ErrNotFound = errors.New("store: key not found")

// KV is a raw byte key/value backend.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
	Has(key string) bool
	Keys(ctx context.Context) []string
	Close() error
}

// Open selects the backend named by cfg.
func Open(cfg Config) (KV, error) {
	switch cfg.Driver() {
	case DriverDiskv, "":
		return NewDiskv(cfg.BasePath())
	case DriverSQLite:
		return NewSQLite(cfg.BasePath())
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver())
	}
}

type memoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemory returns a process-local KV.
func NewMemory() KV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *memoryKV) Write(key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), val...)
	return nil
}

func (m *memoryKV) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryKV) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memoryKV) Keys(context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *memoryKV) Close() error {
	return nil
}
