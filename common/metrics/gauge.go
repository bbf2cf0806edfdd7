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
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/metric"
)

func NewGauge(name string, description string, unit Unit, labels map[string]any, callback func() int64) {
	g, err := meter.Int64ObservableGauge(name,
		metric.WithUnit(string(unit)),
		metric.WithDescription(description),
	)
	fatalOnErr(err, name)

	attrs := getAttrs(labels)

	_, err = meter.RegisterCallback(func(_ context.Context, observer metric.Observer) error {
		observer.ObserveInt64(g, callback(), attrs)
		return nil
	}, g)
	if err != nil {
		slog.Error(
			"Failed to register gauge",
			slog.String("metric-name", name),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
