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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obkit/observable/common/logging"
)

func init() {
	logging.ConfigureLogger()
}

type mapEvent struct {
	kind  string
	key   string
	value int
}

func recordMapEvents(m *Map[string, int]) *[]mapEvent {
	events := &[]mapEvent{}
	m.AddInsertListener(func(_ *Map[string, int], key string, value int) {
		*events = append(*events, mapEvent{"inserted", key, value})
	})
	m.AddRemoveListener(func(_ *Map[string, int], key string, value int) {
		*events = append(*events, mapEvent{"removed", key, value})
	})
	return events
}

func TestMap_PutGetDelete(t *testing.T) {
	m := NewMap[string, int]()
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.ContainsKey("a"))

	previous, replaced := m.Put("a", 1)
	assert.False(t, replaced)
	assert.Equal(t, 0, previous)
	assert.Equal(t, 1, m.Len())
	assert.True(t, m.ContainsKey("a"))

	v, found := m.Get("a")
	assert.True(t, found)
	assert.Equal(t, 1, v)

	removed, found := m.Delete("a")
	assert.True(t, found)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, m.Len())
}

func TestMap_ReplaceFiresRemoveThenInsert(t *testing.T) {
	m := NewMap[string, int]()
	m.Put("a", 1)

	events := recordMapEvents(m)

	previous, replaced := m.Put("a", 2)
	assert.True(t, replaced)
	assert.Equal(t, 1, previous)

	// Exactly one remove of the old pair followed by one insert of the new
	// pair. Never a "changed" event, never two inserts.
	assert.Equal(t, []mapEvent{
		{"removed", "a", 1},
		{"inserted", "a", 2},
	}, *events)

	v, _ := m.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, m.Len())
}

func TestMap_DeleteAbsentIsNoOp(t *testing.T) {
	m := NewMap[string, int]()
	m.Put("a", 1)

	events := recordMapEvents(m)

	removed, found := m.Delete("b")
	assert.False(t, found)
	assert.Equal(t, 0, removed)
	assert.Empty(t, *events)

	// Calling it twice in a row is observably identical to calling it once.
	m.Delete("a")
	removed, found = m.Delete("a")
	assert.False(t, found)
	assert.Equal(t, 0, removed)
	assert.Equal(t, []mapEvent{{"removed", "a", 1}}, *events)
}

func TestMap_PutAll(t *testing.T) {
	src := NewMap[string, int]()
	src.Put("a", 1)
	src.Put("b", 2)
	src.Put("c", 3)

	dst := NewMap[string, int]()
	dst.Put("a", 0)

	events := recordMapEvents(dst)

	dst.PutAll(src)
	assert.Equal(t, 3, dst.Len())

	// Each pair is an independent logical change: replacing "a" is two
	// events, the two fresh keys one each.
	assert.Len(t, *events, 4)

	for _, key := range []string{"a", "b", "c"} {
		expected, _ := src.Get(key)
		actual, found := dst.Get(key)
		assert.True(t, found)
		assert.Equal(t, expected, actual)
	}
}

func TestMap_Clear(t *testing.T) {
	m := NewMap[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)

	events := recordMapEvents(m)

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.Keys().Len())
	assert.Equal(t, 0, m.Values().Len())
	assert.Equal(t, 0, m.Entries().Len())

	// One removal event per key, exactly as individual Delete calls.
	assert.Len(t, *events, 3)
	for _, e := range *events {
		assert.Equal(t, "removed", e.kind)
	}

	m.Clear()
	assert.Len(t, *events, 3)
}

func TestMap_ListenerSeesNewState(t *testing.T) {
	m := NewMap[string, int]()

	checked := 0
	m.AddInsertListener(func(m *Map[string, int], key string, value int) {
		// The fire happens after the store mutation: the listener observes
		// the new state, on the map and on every view.
		v, found := m.Get(key)
		assert.True(t, found)
		assert.Equal(t, value, v)
		assert.True(t, m.Keys().Contains(key))
		assert.True(t, m.Values().Contains(value))
		assert.True(t, m.Entries().Contains(Entry[string, int]{Key: key, Value: value}))
		checked++
	})
	m.AddRemoveListener(func(m *Map[string, int], key string, _ int) {
		assert.False(t, m.ContainsKey(key))
		assert.False(t, m.Keys().Contains(key))
		checked++
	})

	m.Put("a", 1)
	m.Delete("a")
	assert.Equal(t, 2, checked)
}

func TestMap_ListenerCancellation(t *testing.T) {
	m := NewMap[string, int]()

	cancelledCalls := 0
	survivorCalls := 0

	registration := m.AddInsertListener(func(_ *Map[string, int], _ string, _ int) {
		cancelledCalls++
	})
	m.AddInsertListener(func(_ *Map[string, int], _ string, _ int) {
		survivorCalls++
	})

	m.Put("a", 1)
	assert.Equal(t, 1, cancelledCalls)
	assert.Equal(t, 1, survivorCalls)

	registration.Cancel()
	m.Put("b", 2)
	assert.Equal(t, 1, cancelledCalls)
	assert.Equal(t, 2, survivorCalls)

	// Double-cancellation is a no-op.
	registration.Cancel()
	m.Put("c", 3)
	assert.Equal(t, 1, cancelledCalls)
	assert.Equal(t, 3, survivorCalls)
}

func TestMap_Scenario(t *testing.T) {
	m := NewMap[string, int]()
	events := recordMapEvents(m)

	m.Put("a", 1)
	assert.Equal(t, []string{"a"}, m.Keys().Values())
	assert.Equal(t, []int{1}, m.Values().Values())
	assert.Equal(t, []Entry[string, int]{{Key: "a", Value: 1}}, m.Entries().Values())

	*events = nil
	m.Put("a", 2)
	assert.Equal(t, []mapEvent{
		{"removed", "a", 1},
		{"inserted", "a", 2},
	}, *events)
	assert.Equal(t, []string{"a"}, m.Keys().Values())
	assert.Equal(t, []int{2}, m.Values().Values())

	*events = nil
	m.Delete("a")
	assert.Equal(t, []mapEvent{{"removed", "a", 2}}, *events)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys().Values())
	assert.Empty(t, m.Values().Values())
	assert.Empty(t, m.Entries().Values())
}

func TestMap_WithExpectedSize(t *testing.T) {
	m := NewMapWithExpectedSize[string, int](16)
	assert.Equal(t, 0, m.Len())

	// The size is a hint only: behavior matches the default constructor.
	m.Put("a", 1)
	assert.Equal(t, []string{"a"}, m.Keys().Values())
}

func TestSortedKeys(t *testing.T) {
	m := NewMap[string, int]()
	for i, key := range []string{"d", "b", "a", "c"} {
		m.Put(key, i)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, SortedKeys(m))
}

func TestMap_String(t *testing.T) {
	m := NewMap[string, int]()
	m.Put("a", 1)
	assert.Equal(t, "{a: 1}", m.String())
}
