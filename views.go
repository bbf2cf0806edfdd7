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

package observable

// The keys, values and entries views mirror the owning map in both
// directions: every map insert is played back into each view and every map
// remove is pulled out of each view, while an external removal on a view is
// forwarded back into the map as a Delete.
//
// The two directions form a cycle: view-remove -> map-remove -> view-remove.
// Termination relies on the second hop finding nothing left to remove; a
// removal of an absent element mutates nothing and fires nothing, so the
// propagation dies out after at most one redundant callback per surface.

// KeysView is the unique-element view of a map's current key set. Keys leave
// the view through Remove, which propagates into the map; keys enter only as
// playback of map inserts.
type KeysView[K comparable, V comparable] struct {
	set *Set[K]
	m   *Map[K, V]
}

func newKeysView[K comparable, V comparable](m *Map[K, V]) *KeysView[K, V] {
	v := &KeysView[K, V]{
		set: NewSet[K](),
		m:   m,
	}
	v.set.AddRemoveListener(func(_ *Set[K], key K) {
		m.Delete(key)
	})
	m.AddInsertListener(func(_ *Map[K, V], key K, _ V) {
		v.set.Add(key)
	})
	m.AddRemoveListener(func(_ *Map[K, V], key K, _ V) {
		v.set.Remove(key)
	})
	return v
}

// Add rejects direct insertion: the key set does not support adding.
func (v *KeysView[K, V]) Add(K) error {
	return ErrReadOnlyView
}

// Remove drops key from the view and removes the corresponding pair from the
// owning map. It returns false and fires nothing when the key is absent.
func (v *KeysView[K, V]) Remove(key K) bool {
	return v.set.Remove(key)
}

func (v *KeysView[K, V]) Contains(key K) bool {
	return v.set.Contains(key)
}

func (v *KeysView[K, V]) Len() int {
	return v.set.Len()
}

func (v *KeysView[K, V]) Values() []K {
	return v.set.Values()
}

func (v *KeysView[K, V]) AddInsertListener(listener SetInsertListener[K]) Registration {
	return v.set.AddInsertListener(listener)
}

func (v *KeysView[K, V]) AddRemoveListener(listener SetRemoveListener[K]) Registration {
	return v.set.AddRemoveListener(listener)
}

// ValuesView is the ordered view of a map's current values. Duplicates are
// kept when several keys map to equal values. The order is the insertion
// order of the view's own store and is not stable across replaces.
type ValuesView[K comparable, V comparable] struct {
	list *List[V]
	m    *Map[K, V]
}

func newValuesView[K comparable, V comparable](m *Map[K, V]) *ValuesView[K, V] {
	v := &ValuesView[K, V]{
		list: NewList[V](),
		m:    m,
	}
	v.list.AddRemoveListener(func(_ *List[V], _ int, element V) {
		// Match by ==, not by structural lookup: for pointer value types
		// only the keys bound to this exact instance are collected, never
		// keys bound to an equal-but-distinct instance.
		var keysToRemove []K
		m.store.Each(func(key K, value V) {
			if value == element {
				keysToRemove = append(keysToRemove, key)
			}
		})
		for _, key := range keysToRemove {
			m.Delete(key)
		}
	})
	m.AddInsertListener(func(_ *Map[K, V], _ K, value V) {
		v.list.Add(value)
	})
	m.AddRemoveListener(func(_ *Map[K, V], _ K, value V) {
		v.list.Remove(value)
	})
	return v
}

// Add rejects direct insertion; values enter only through map inserts.
func (v *ValuesView[K, V]) Add(V) error {
	return ErrReadOnlyView
}

// Remove drops the first occurrence of value from the view and removes every
// key currently mapped to that exact instance from the owning map. It returns
// false and fires nothing when the value is absent.
func (v *ValuesView[K, V]) Remove(value V) bool {
	return v.list.Remove(value)
}

func (v *ValuesView[K, V]) Get(index int) (V, bool) {
	return v.list.Get(index)
}

func (v *ValuesView[K, V]) Contains(value V) bool {
	return v.list.Contains(value)
}

func (v *ValuesView[K, V]) Len() int {
	return v.list.Len()
}

func (v *ValuesView[K, V]) Values() []V {
	return v.list.Values()
}

func (v *ValuesView[K, V]) AddInsertListener(listener ListInsertListener[V]) Registration {
	return v.list.AddInsertListener(listener)
}

func (v *ValuesView[K, V]) AddRemoveListener(listener ListRemoveListener[V]) Registration {
	return v.list.AddRemoveListener(listener)
}

// EntriesView is the unique-element view of a map's current (key, value)
// pairs, one entry per mapping entry.
type EntriesView[K comparable, V comparable] struct {
	set *Set[Entry[K, V]]
	m   *Map[K, V]
}

func newEntriesView[K comparable, V comparable](m *Map[K, V]) *EntriesView[K, V] {
	v := &EntriesView[K, V]{
		set: NewSet[Entry[K, V]](),
		m:   m,
	}
	v.set.AddRemoveListener(func(_ *Set[Entry[K, V]], entry Entry[K, V]) {
		m.Delete(entry.Key)
	})
	m.AddInsertListener(func(_ *Map[K, V], key K, value V) {
		v.set.Add(Entry[K, V]{Key: key, Value: value})
	})
	m.AddRemoveListener(func(_ *Map[K, V], key K, value V) {
		v.set.Remove(Entry[K, V]{Key: key, Value: value})
	})
	return v
}

// Add rejects direct insertion; the entry set does not support adding.
func (v *EntriesView[K, V]) Add(Entry[K, V]) error {
	return ErrReadOnlyView
}

// Remove drops entry from the view and removes the entry's key from the
// owning map. It returns false and fires nothing when the entry is absent.
func (v *EntriesView[K, V]) Remove(entry Entry[K, V]) bool {
	return v.set.Remove(entry)
}

func (v *EntriesView[K, V]) Contains(entry Entry[K, V]) bool {
	return v.set.Contains(entry)
}

func (v *EntriesView[K, V]) Len() int {
	return v.set.Len()
}

func (v *EntriesView[K, V]) Values() []Entry[K, V] {
	return v.set.Values()
}

func (v *EntriesView[K, V]) AddInsertListener(listener SetInsertListener[Entry[K, V]]) Registration {
	return v.set.AddInsertListener(listener)
}

func (v *EntriesView[K, V]) AddRemoveListener(listener SetRemoveListener[Entry[K, V]]) Registration {
	return v.set.AddRemoveListener(listener)
}
