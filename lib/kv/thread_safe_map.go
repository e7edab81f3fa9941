package kv

import (
	"sync"

	"github.com/benz9527/xbst/lib/infra"
)

type threadSafeMap[K comparable, V any] struct {
	lock  sync.RWMutex
	items map[K]V
}

func (t *threadSafeMap[K, V]) AddOrUpdate(key K, obj V) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.items == nil {
		return infra.NewErrorStack("[thread-safe-map] purged")
	}
	t.items[key] = obj
	return nil
}

func (t *threadSafeMap[K, V]) Delete(key K) (V, error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	item, exists := t.items[key]
	if !exists {
		return item, infra.NewErrorStack("[thread-safe-map] key not found")
	}
	delete(t.items, key)
	return item, nil
}

func (t *threadSafeMap[K, V]) Get(key K) (item V, exists bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	item, exists = t.items[key]
	return
}

func (t *threadSafeMap[K, V]) ListKeys(filters ...SafeStoreKeyFilterFunc[K]) []K {
	realFilters := make([]SafeStoreKeyFilterFunc[K], 0, len(filters))
	for _, filter := range filters {
		if filter != nil {
			realFilters = append(realFilters, filter)
		}
	}
	if len(realFilters) == 0 {
		realFilters = append(realFilters, defaultAllKeysFilter[K])
	}

	t.lock.RLock()
	defer t.lock.RUnlock()

	keys := make([]K, 0, len(t.items))
	for key := range t.items {
		for _, filter := range realFilters {
			if filter(key) {
				keys = append(keys, key)
				break
			}
		}
	}
	return keys
}

func (t *threadSafeMap[K, V]) Len() int {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return len(t.items)
}

func (t *threadSafeMap[K, V]) Purge() error {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.items = nil
	return nil
}

type ThreadSafeMapOption[K comparable, V any] func(*threadSafeMap[K, V])

func WithThreadSafeMapInitCap[K comparable, V any](capacity uint32) ThreadSafeMapOption[K, V] {
	return func(m *threadSafeMap[K, V]) {
		m.items = make(map[K]V, capacity)
	}
}

func NewThreadSafeMap[K comparable, V any](opts ...ThreadSafeMapOption[K, V]) ThreadSafeStorer[K, V] {
	m := &threadSafeMap[K, V]{}
	for _, o := range opts {
		if o != nil {
			o(m)
		}
	}
	if m.items == nil {
		m.items = make(map[K]V, 32)
	}
	return m
}
