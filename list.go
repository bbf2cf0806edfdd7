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
	"github.com/emirpasic/gods/v2/lists/arraylist"
)

// ListInsertListener is invoked after an element was inserted at index.
type ListInsertListener[V comparable] func(list *List[V], index int, element V)

// ListRemoveListener is invoked after the element at index was removed.
type ListRemoveListener[V comparable] func(list *List[V], index int, element V)

// List is an ordered observable collection with positional insert and remove
// notifications. Elements are compared with Go ==, which for pointer element
// types is reference identity.
//
// Like every collection in this package, a List is single-threaded: all
// operations and notifications run to completion on the calling goroutine.
type List[V comparable] struct {
	elements *arraylist.List[V]

	insertListeners *registry[ListInsertListener[V]]
	removeListeners *registry[ListRemoveListener[V]]
}

func NewList[V comparable]() *List[V] {
	return &List[V]{
		elements:        arraylist.New[V](),
		insertListeners: newRegistry[ListInsertListener[V]]("observable-list"),
		removeListeners: newRegistry[ListRemoveListener[V]]("observable-list"),
	}
}

// Add appends element and fires the insert listeners. Listeners observe the
// list with the element already present.
func (l *List[V]) Add(element V) {
	l.elements.Add(element)
	index := l.elements.Size() - 1
	l.insertListeners.forEach(func(listener ListInsertListener[V]) {
		listener(l, index, element)
	})
}

// Remove removes the first occurrence of element. It returns false, mutates
// nothing and fires nothing when the element is not present.
func (l *List[V]) Remove(element V) bool {
	index := l.elements.IndexOf(element)
	if index < 0 {
		return false
	}
	_, _ = l.RemoveAt(index)
	return true
}

// RemoveAt removes the element at index, firing the remove listeners after
// the store mutation. The bool result is false when index is out of range.
func (l *List[V]) RemoveAt(index int) (V, bool) {
	element, found := l.elements.Get(index)
	if !found {
		var zero V
		return zero, false
	}
	l.elements.Remove(index)
	l.removeListeners.forEach(func(listener ListRemoveListener[V]) {
		listener(l, index, element)
	})
	return element, true
}

func (l *List[V]) Get(index int) (V, bool) {
	return l.elements.Get(index)
}

func (l *List[V]) Contains(element V) bool {
	return l.elements.Contains(element)
}

func (l *List[V]) IndexOf(element V) int {
	return l.elements.IndexOf(element)
}

func (l *List[V]) Len() int {
	return l.elements.Size()
}

// Values returns the elements in list order.
func (l *List[V]) Values() []V {
	return l.elements.Values()
}

func (l *List[V]) AddInsertListener(listener ListInsertListener[V]) Registration {
	return l.insertListeners.Add(listener)
}

func (l *List[V]) AddRemoveListener(listener ListRemoveListener[V]) Registration {
	return l.removeListeners.Add(listener)
}
