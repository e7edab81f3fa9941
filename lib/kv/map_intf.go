package kv

type SafeStoreKeyFilterFunc[K comparable] func(key K) bool

func defaultAllKeysFilter[K comparable](key K) bool {
	return true
}

// ThreadSafeStorer is a registry shared by loggers that may be
// created and used from different goroutines.
type ThreadSafeStorer[K comparable, V any] interface {
	AddOrUpdate(key K, obj V) error
	Delete(key K) (V, error)
	Get(key K) (item V, exists bool)
	ListKeys(filters ...SafeStoreKeyFilterFunc[K]) []K
	Len() int
	Purge() error
}
