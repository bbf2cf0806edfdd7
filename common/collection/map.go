package collection

type Map[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (value V, found bool)
	Remove(key K)
	Keys() []K
	Empty() bool
	Size() int
	Clear()
	Values() []V
	Each(f func(key K, value V))
	String() string
}

func NewHashMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{
		container: make(map[K]V),
	}
}

// NewHashMapWithExpectedSize pre-sizes the container. It is a hint only and
// has no behavioral effect.
func NewHashMapWithExpectedSize[K comparable, V any](size int) Map[K, V] {
	return &hashMap[K, V]{
		container: make(map[K]V, size),
	}
}
