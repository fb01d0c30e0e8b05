// Package memory keeps every collection in process memory. It backs the
// STORAGE=memory development mode and the service tests, and enforces the same
// unique keys as the Mongo indexes.
package memory

import (
	"sync"

	"campusportal/database/repository"
)

// table is an insertion-ordered map guarded by its own lock.
type table[T any] struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insertLocked(id string, v T) error {
	if _, ok := t.rows[id]; ok {
		return repository.ErrDuplicate
	}
	t.rows[id] = v
	t.order = append(t.order, id)
	return nil
}

func (t *table[T]) get(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}
	return v, nil
}

func (t *table[T]) deleteLocked(id string) error {
	if _, ok := t.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(t.rows, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func (t *table[T]) delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.deleteLocked(id)
}

// scanLocked visits rows in insertion order. The caller holds at least a read lock.
func (t *table[T]) scanLocked(keep func(T) bool) []T {
	out := []T{}
	for _, id := range t.order {
		if v := t.rows[id]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (t *table[T]) scan(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scanLocked(keep)
}

func all[T any](T) bool { return true }
