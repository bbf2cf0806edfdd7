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

package metrics

import (
	"sync/atomic"

	"github.com/obkit/observable"
)

// MapMetrics instruments one observable map. Listeners are the library's own
// extension point, so the instrumentation attaches like any other observer
// and detaches by cancelling its registrations.
type MapMetrics struct {
	inserts Counter
	removes Counter

	// The gauge callback runs on the scrape goroutine, while the map itself
	// is single-threaded. The size is mirrored into an atomic from the
	// listeners so the scrape never touches the map.
	size atomic.Int64

	registrations []observable.Registration
}

// NewMapMetrics attaches insert/remove counters and a size gauge to m. The
// name label distinguishes multiple instrumented maps.
func NewMapMetrics[K comparable, V comparable](name string, m *observable.Map[K, V]) *MapMetrics {
	labels := map[string]any{"map": name}

	mm := &MapMetrics{
		inserts: NewCounter("obkit_map_inserts",
			"The total number of entries inserted into the map", Dimensionless, labels),
		removes: NewCounter("obkit_map_removes",
			"The total number of entries removed from the map", Dimensionless, labels),
	}
	mm.size.Store(int64(m.Len()))

	NewGauge("obkit_map_size",
		"The current number of entries in the map", Dimensionless, labels,
		mm.size.Load)

	mm.registrations = append(mm.registrations,
		m.AddInsertListener(func(_ *observable.Map[K, V], _ K, _ V) {
			mm.size.Add(1)
			mm.inserts.Inc()
		}),
		m.AddRemoveListener(func(_ *observable.Map[K, V], _ K, _ V) {
			mm.size.Add(-1)
			mm.removes.Inc()
		}),
	)
	return mm
}

// Close cancels the listener registrations. Counters already accumulated
// keep their values.
func (mm *MapMetrics) Close() error {
	for _, registration := range mm.registrations {
		registration.Cancel()
	}
	return nil
}
