package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// mealsDir groups the per-week partitions in their own directory so the base
// path stays readable.
const mealsDir = "meals"

type diskvKV struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv opens a diskv-backed KV rooted at basePath.
func NewDiskv(basePath string) (KV, error) {
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &diskvKV{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      0, // other processes write these files
	}), basePath: basePath}, nil
}

func (k *diskvKV) Read(key string) ([]byte, error) {
	val, err := k.d.Read(key)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return val, err
}

func (k *diskvKV) Write(key string, val []byte) error {
	return k.d.Write(key, val)
}

func (k *diskvKV) Erase(key string) error {
	if !k.d.Has(key) {
		return nil
	}
	return k.d.Erase(key)
}

func (k *diskvKV) Has(key string) bool {
	return k.d.Has(key)
}

func (k *diskvKV) Keys(ctx context.Context) []string {
	var keys []string
	for key := range k.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (k *diskvKV) Close() error {
	return nil
}

// keyToPathTransform maps "meals-week-2024-0-8" to meals/week-2024-0-8 and
// every other key to a file in the base path.
func keyToPathTransform(key string) *diskv.PathKey {
	if rest, ok := strings.CutPrefix(key, mealsPrefix); ok && rest != "" {
		return &diskv.PathKey{Path: []string{mealsDir}, FileName: rest}
	}
	return &diskv.PathKey{Path: []string{}, FileName: key}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 1 && pathKey.Path[0] == mealsDir {
		return mealsPrefix + pathKey.FileName
	}
	return pathKey.FileName
}
