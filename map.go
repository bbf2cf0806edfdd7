// Copyright 2025 The obkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package observable provides mutation-reactive collections: a key-value Map
// whose keys, values and entries are exposed as live derived views, with
// synchronous listener notifications on every logical insert and remove.
//
// The collections are not safe for concurrent use. All mutations and the
// notification fan-out they trigger run to completion on the calling
// goroutine.
package observable

import (
	"log/slog"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/obkit/observable/common/collection"
)

// MapInsertListener is invoked after the (key, value) pair was inserted.
type MapInsertListener[K comparable, V comparable] func(m *Map[K, V], key K, value V)

// MapRemoveListener is invoked after the (key, value) pair was removed.
type MapRemoveListener[K comparable, V comparable] func(m *Map[K, V], key K, value V)

// Entry is one key-value pair of a Map. Two entries are equal iff both key
// and value are equal.
type Entry[K comparable, V comparable] struct {
	Key   K
	Value V
}

// Map is an observable key-value mapping. It owns its backing store and the
// three derived views returned by Keys, Values and Entries; the views hold a
// non-owning back-reference to the map to propagate removals.
//
// The mapping itself preserves no iteration order; only the values view keeps
// its elements ordered.
type Map[K comparable, V comparable] struct {
	store collection.Map[K, V]

	insertListeners *registry[MapInsertListener[K, V]]
	removeListeners *registry[MapRemoveListener[K, V]]

	entries *EntriesView[K, V]
	keys    *KeysView[K, V]
	values  *ValuesView[K, V]

	log *slog.Logger
}

func NewMap[K comparable, V comparable]() *Map[K, V] {
	return newMap(collection.NewHashMap[K, V]())
}

// NewMapWithExpectedSize pre-sizes the backing store. The size is a hint only
// and has no behavioral effect.
func NewMapWithExpectedSize[K comparable, V comparable](size int) *Map[K, V] {
	return newMap(collection.NewHashMapWithExpectedSize[K, V](size))
}

func newMap[K comparable, V comparable](store collection.Map[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		store:           store,
		insertListeners: newRegistry[MapInsertListener[K, V]]("observable-map"),
		removeListeners: newRegistry[MapRemoveListener[K, V]]("observable-map"),
		log:             slog.With(slog.String("component", "observable-map")),
	}

	// The views must be wired before any external listener can attach. An
	// insert listener that inspects a view during its callback must already
	// see the just-inserted element, so the view bindings have to sit ahead
	// of it in the registration order.
	m.entries = newEntriesView(m)
	m.keys = newKeysView(m)
	m.values = newValuesView(m)

	return m
}

// Put maps key to value and returns the previous value, if any. When the key
// is already present the old pair is removed from the store and the remove
// listeners fire with it before the new pair is stored and the insert
// listeners fire: one replace is two logical changes. Replacing in place
// instead would emit no removal event, and the key set's add-then-remove
// bookkeeping would call back and drop the freshly stored pair.
func (m *Map[K, V]) Put(key K, value V) (previous V, replaced bool) {
	previous, replaced = m.store.Get(key)
	if replaced {
		m.store.Remove(key)
		m.fireRemoved(key, previous)
	}

	m.store.Put(key, value)
	m.fireInserted(key, value)
	return previous, replaced
}

// Delete removes the pair for key and fires the remove listeners. When the
// key is absent it returns the zero value and false, mutates nothing and
// fires nothing.
func (m *Map[K, V]) Delete(key K) (removed V, found bool) {
	removed, found = m.store.Get(key)
	if !found {
		return removed, false
	}

	m.store.Remove(key)
	m.fireRemoved(key, removed)
	return removed, true
}

// PutAll performs one Put per pair of other, in the iteration order of its
// backing store. Each pair is an independent logical change; there is no
// batching.
func (m *Map[K, V]) PutAll(other *Map[K, V]) {
	other.store.Each(func(key K, value V) {
		m.Put(key, value)
	})
}

// Clear removes every present key one at a time, so each removal fires its
// own event exactly as an individual Delete would. The key set is snapshotted
// first.
func (m *Map[K, V]) Clear() {
	for _, key := range m.store.Keys() {
		m.Delete(key)
	}
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.store.Get(key)
}

func (m *Map[K, V]) ContainsKey(key K) bool {
	_, found := m.store.Get(key)
	return found
}

func (m *Map[K, V]) Len() int {
	return m.store.Size()
}

// Each iterates the current pairs of the backing store, in no particular
// order. The callback must not mutate the map.
func (m *Map[K, V]) Each(f func(key K, value V)) {
	m.store.Each(f)
}

func (m *Map[K, V]) String() string {
	return m.store.String()
}

// Keys returns the live key set view. The same instance is returned on every
// call; it was wired at construction time.
func (m *Map[K, V]) Keys() *KeysView[K, V] {
	return m.keys
}

// Values returns the live values view.
func (m *Map[K, V]) Values() *ValuesView[K, V] {
	return m.values
}

// Entries returns the live entry set view.
func (m *Map[K, V]) Entries() *EntriesView[K, V] {
	return m.entries
}

// AddInsertListener attaches a pair-level insert listener. It fires exactly
// once per logical insert; a replacing Put fires one remove then one insert.
func (m *Map[K, V]) AddInsertListener(listener MapInsertListener[K, V]) Registration {
	return m.insertListeners.Add(listener)
}

// AddRemoveListener attaches a pair-level remove listener.
func (m *Map[K, V]) AddRemoveListener(listener MapRemoveListener[K, V]) Registration {
	return m.removeListeners.Add(listener)
}

func (m *Map[K, V]) fireInserted(key K, value V) {
	m.log.Debug(
		"Inserted entry",
		slog.Any("key", key),
		slog.Any("value", value),
	)
	m.insertListeners.forEach(func(listener MapInsertListener[K, V]) {
		listener(m, key, value)
	})
}

func (m *Map[K, V]) fireRemoved(key K, value V) {
	m.log.Debug(
		"Removed entry",
		slog.Any("key", key),
		slog.Any("value", value),
	)
	m.removeListeners.forEach(func(listener MapRemoveListener[K, V]) {
		listener(m, key, value)
	})
}

// SortedKeys returns the keys of m in ascending order. The mapping makes no
// iteration-order promise of its own; this is a stable snapshot for callers
// that need deterministic output.
func SortedKeys[K constraints.Ordered, V comparable](m *Map[K, V]) []K {
	keys := m.store.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}
