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
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
)

// Registration is the revocable handle returned when a listener is attached
// to an observable collection. Cancelling it is the only way to stop future
// notifications for that listener.
type Registration interface {
	// Cancel detaches the listener. Cancelling an already-cancelled
	// registration is a no-op.
	Cancel()
}

type registration[L any] struct {
	id        string
	owner     *registry[L]
	listener  L
	cancelled atomic.Bool
}

func (r *registration[L]) Cancel() {
	if !r.cancelled.CompareAndSwap(false, true) {
		return
	}
	r.owner.remove(r)
}

// registry is the fan-out list for one listener kind. Every observable
// collection owns one registry per event it emits; the fan-out loop is shared
// here instead of being repeated per collection.
type registry[L any] struct {
	registrations []*registration[L]
	log           *slog.Logger
}

func newRegistry[L any](component string) *registry[L] {
	return &registry[L]{
		log: slog.With(slog.String("component", component)),
	}
}

func (r *registry[L]) Add(listener L) Registration {
	reg := &registration[L]{
		id:       uuid.NewString(),
		owner:    r,
		listener: listener,
	}
	r.registrations = append(r.registrations, reg)
	r.log.Debug(
		"Registered listener",
		slog.String("registration-id", reg.id),
	)
	return reg
}

func (r *registry[L]) remove(reg *registration[L]) {
	for i, other := range r.registrations {
		if other == reg {
			r.registrations = append(r.registrations[:i], r.registrations[i+1:]...)
			r.log.Debug(
				"Cancelled listener registration",
				slog.String("registration-id", reg.id),
			)
			return
		}
	}
}

// forEach invokes fn for every registered listener, synchronously and in
// registration order. The registration list is snapshotted before the loop:
// a listener attached during the fan-out is not invoked for the in-flight
// event, while a cancellation during the fan-out is honored for listeners
// not yet reached.
func (r *registry[L]) forEach(fn func(listener L)) {
	snapshot := make([]*registration[L], len(r.registrations))
	copy(snapshot, r.registrations)

	for _, reg := range snapshot {
		if reg.cancelled.Load() {
			continue
		}
		fn(reg.listener)
	}
}
