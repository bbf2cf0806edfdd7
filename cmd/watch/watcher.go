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

package watch

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"golang.org/x/time/rate"

	"github.com/obkit/observable"
	"github.com/obkit/observable/common/metrics"
)

type state struct {
	Entries map[string]string `mapstructure:"entries"`
}

type watcher struct {
	v *viper.Viper
	m *observable.Map[string, string]

	mapMetrics *metrics.MapMetrics
	prometheus *metrics.PrometheusMetrics

	reloadCh chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc

	log *slog.Logger
}

func newWatcher(v *viper.Viper, metricsAddr string, reloadCh chan struct{}) (*watcher, error) {
	ctx, cancel := context.WithCancel(context.Background())

	w := &watcher{
		v:        v,
		m:        observable.NewMap[string, string](),
		reloadCh: reloadCh,
		ctx:      ctx,
		cancel:   cancel,
		log:      slog.With(slog.String("component", "watch")),
	}

	w.m.AddInsertListener(func(_ *observable.Map[string, string], key string, value string) {
		w.log.Info(
			"Inserted entry",
			slog.String("key", key),
			slog.String("value", value),
		)
	})
	w.m.AddRemoveListener(func(_ *observable.Map[string, string], key string, value string) {
		w.log.Info(
			"Removed entry",
			slog.String("key", key),
			slog.String("value", value),
		)
	})

	w.mapMetrics = metrics.NewMapMetrics("watch", w.m)

	var err error
	if w.prometheus, err = metrics.Start(metricsAddr); err != nil {
		cancel()
		return nil, err
	}

	if err = w.reconcile(); err != nil {
		cancel()
		_ = w.prometheus.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

func (w *watcher) run() {
	// Coalesce editor write bursts into at most one reload per second.
	limiter := rate.NewLimiter(rate.Every(time.Second), 1)

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-w.reloadCh:
			if err := limiter.Wait(w.ctx); err != nil {
				return
			}
			if err := w.reconcile(); err != nil {
				w.log.Error(
					"Failed to reconcile state file",
					slog.Any("error", err),
				)
			}
		}
	}
}

func (w *watcher) loadState() (state, error) {
	s := state{}

	// The file can be mid-write when the change event arrives; retry
	// transient read failures.
	err := backoff.RetryNotify(func() error {
		if err := w.v.ReadInConfig(); err != nil {
			return err
		}
		return w.v.Unmarshal(&s, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(), // default hook
			mapstructure.StringToSliceHookFunc(","),     // default hook
		)))
	}, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4), w.ctx),
		func(err error, duration time.Duration) {
			w.log.Warn(
				"Failed to read state file",
				slog.Any("error", err),
				slog.Duration("retry-after", duration),
			)
		})
	if err != nil {
		return s, errors.Wrap(err, "failed to load state file")
	}

	return s, nil
}

// reconcile diffs the desired file state against the map and applies the
// difference as individual operations, one notification per logical change.
func (w *watcher) reconcile() error {
	desired, err := w.loadState()
	if err != nil {
		return err
	}

	for _, key := range w.m.Keys().Values() {
		if _, ok := desired.Entries[key]; !ok {
			w.m.Delete(key)
		}
	}

	for key, value := range desired.Entries {
		if current, ok := w.m.Get(key); !ok || current != value {
			w.m.Put(key, value)
		}
	}

	w.log.Debug(
		"Reconciled state file",
		slog.Int("size", w.m.Len()),
	)
	return nil
}

func (w *watcher) Close() error {
	w.cancel()
	return multierr.Combine(
		w.mapMetrics.Close(),
		w.prometheus.Close(),
	)
}
