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

package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashMap(t *testing.T) {
	m := NewHashMap[string, int]()
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Size())

	m.Put("a", 1)
	m.Put("b", 2)
	assert.Equal(t, 2, m.Size())
	assert.False(t, m.Empty())

	v, found := m.Get("a")
	assert.True(t, found)
	assert.Equal(t, 1, v)

	_, found = m.Get("c")
	assert.False(t, found)

	m.Put("a", 3)
	assert.Equal(t, 2, m.Size())
	v, _ = m.Get("a")
	assert.Equal(t, 3, v)

	assert.ElementsMatch(t, []string{"a", "b"}, m.Keys())
	assert.ElementsMatch(t, []int{3, 2}, m.Values())

	m.Remove("a")
	assert.Equal(t, 1, m.Size())
	_, found = m.Get("a")
	assert.False(t, found)

	// Removing an absent key is a no-op
	m.Remove("a")
	assert.Equal(t, 1, m.Size())

	m.Clear()
	assert.True(t, m.Empty())
}

func TestHashMap_Each(t *testing.T) {
	m := NewHashMapWithExpectedSize[string, int](4)
	m.Put("x", 10)
	m.Put("y", 20)

	seen := map[string]int{}
	m.Each(func(key string, value int) {
		seen[key] = value
	})
	assert.Equal(t, map[string]int{"x": 10, "y": 20}, seen)
}
