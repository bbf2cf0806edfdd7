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
)

func fire(r *registry[func()]) {
	r.forEach(func(listener func()) {
		listener()
	})
}

func TestRegistry_FireOrder(t *testing.T) {
	r := newRegistry[func()]("test")

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		r.Add(func() {
			order = append(order, i)
		})
	}

	fire(r)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestRegistry_AddDuringFire(t *testing.T) {
	r := newRegistry[func()]("test")

	lateCalls := 0
	r.Add(func() {
		// The fan-out iterates a snapshot: a listener attached now must not
		// run for the in-flight event.
		r.Add(func() {
			lateCalls++
		})
	})

	fire(r)
	assert.Equal(t, 0, lateCalls)

	fire(r)
	assert.Equal(t, 1, lateCalls)
}

func TestRegistry_CancelDuringFire(t *testing.T) {
	r := newRegistry[func()]("test")

	var second Registration
	secondCalls := 0

	r.Add(func() {
		second.Cancel()
	})
	second = r.Add(func() {
		secondCalls++
	})

	// A cancellation during the fan-out is honored for listeners not yet
	// reached.
	fire(r)
	assert.Equal(t, 0, secondCalls)

	fire(r)
	assert.Equal(t, 0, secondCalls)
}

func TestRegistry_RepeatedCancelIsNoOp(t *testing.T) {
	r := newRegistry[func()]("test")

	calls := 0
	first := r.Add(func() { calls++ })
	r.Add(func() { calls++ })

	first.Cancel()
	first.Cancel()
	first.Cancel()

	fire(r)
	assert.Equal(t, 1, calls)
}
