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
	"github.com/emirpasic/gods/v2/sets/linkedhashset"
)

// SetInsertListener is invoked after element was added to the set.
type SetInsertListener[E comparable] func(set *Set[E], element E)

// SetRemoveListener is invoked after element was removed from the set.
type SetRemoveListener[E comparable] func(set *Set[E], element E)

// Set is an unordered, duplicate-free observable collection. Equality is
// structural (Go == on the element type). Iteration follows insertion order,
// a property of the backing store rather than a contract.
type Set[E comparable] struct {
	elements *linkedhashset.Set[E]

	insertListeners *registry[SetInsertListener[E]]
	removeListeners *registry[SetRemoveListener[E]]
}

func NewSet[E comparable]() *Set[E] {
	return &Set[E]{
		elements:        linkedhashset.New[E](),
		insertListeners: newRegistry[SetInsertListener[E]]("observable-set"),
		removeListeners: newRegistry[SetRemoveListener[E]]("observable-set"),
	}
}

// Add inserts element and fires the insert listeners. It returns false,
// mutates nothing and fires nothing when the element is already present.
func (s *Set[E]) Add(element E) bool {
	if s.elements.Contains(element) {
		return false
	}
	s.elements.Add(element)
	s.insertListeners.forEach(func(listener SetInsertListener[E]) {
		listener(s, element)
	})
	return true
}

// Remove deletes element and fires the remove listeners. It returns false,
// mutates nothing and fires nothing when the element is absent. This verified
// no-op is what stops the map/view propagation cycle.
func (s *Set[E]) Remove(element E) bool {
	if !s.elements.Contains(element) {
		return false
	}
	s.elements.Remove(element)
	s.removeListeners.forEach(func(listener SetRemoveListener[E]) {
		listener(s, element)
	})
	return true
}

func (s *Set[E]) Contains(element E) bool {
	return s.elements.Contains(element)
}

func (s *Set[E]) Len() int {
	return s.elements.Size()
}

// Values returns the elements in insertion order.
func (s *Set[E]) Values() []E {
	return s.elements.Values()
}

func (s *Set[E]) AddInsertListener(listener SetInsertListener[E]) Registration {
	return s.insertListeners.Add(listener)
}

func (s *Set[E]) AddRemoveListener(listener SetRemoveListener[E]) Registration {
	return s.removeListeners.Add(listener)
}
