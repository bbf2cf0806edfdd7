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
	"fmt"
	"strings"
)

// hashMap is a plain, non-thread-safe mapping. It is the backing store for
// the observable collections, which are single-threaded by design, so no
// synchronization is carried here.
//
// K: The type of the key, which must be comparable.
// V: The type of the value, which can be any type (any).
type hashMap[K comparable, V any] struct {
	container map[K]V
}

func (h *hashMap[K, V]) Put(key K, value V) {
	h.container[key] = value
}

func (h *hashMap[K, V]) Get(key K) (value V, found bool) {
	value, found = h.container[key]
	return value, found
}

func (h *hashMap[K, V]) Remove(key K) {
	delete(h.container, key)
}

func (h *hashMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(h.container))
	for key := range h.container {
		keys = append(keys, key)
	}
	return keys
}

func (h *hashMap[K, V]) Values() []V {
	values := make([]V, 0, len(h.container))
	for key := range h.container {
		values = append(values, h.container[key])
	}
	return values
}

func (h *hashMap[K, V]) Each(f func(key K, value V)) {
	for key, value := range h.container {
		f(key, value)
	}
}

func (h *hashMap[K, V]) Empty() bool {
	return len(h.container) == 0
}

func (h *hashMap[K, V]) Size() int {
	return len(h.container)
}

func (h *hashMap[K, V]) Clear() {
	h.container = make(map[K]V)
}

func (h *hashMap[K, V]) String() string {
	var builder strings.Builder
	builder.WriteString("{")

	first := true
	for k, val := range h.container {
		if !first {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("%v: %v", k, val))
		first = false
	}
	builder.WriteString("}")
	return builder.String()
}
