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

package replay

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/obkit/observable"
)

type operation struct {
	Op    string `mapstructure:"op"`
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

type scenario struct {
	Operations []operation `mapstructure:"operations"`
}

type entryDump struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

var (
	scenarioFile string

	Cmd = &cobra.Command{
		Use:   "replay",
		Short: "Replay a mutation scenario",
		Long:  `Apply a scripted sequence of put/delete/clear operations to an observable map, logging every notification`,
		Args:  cobra.NoArgs,
		RunE:  exec,
	}
)

func init() {
	Cmd.Flags().StringVarP(&scenarioFile, "scenario", "f", "", "Scenario file (YAML)")
	_ = Cmd.MarkFlagRequired("scenario")
}

func loadScenario(v *viper.Viper) (scenario, error) {
	s := scenario{}

	v.SetConfigType("yaml")
	v.SetConfigFile(scenarioFile)
	if err := v.ReadInConfig(); err != nil {
		return s, err
	}

	if err := v.Unmarshal(&s, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(), // default hook
		mapstructure.StringToSliceHookFunc(","),     // default hook
	))); err != nil {
		return s, errors.Wrap(err, "failed to load scenario")
	}

	return s, nil
}

func exec(*cobra.Command, []string) error {
	s, err := loadScenario(viper.New())
	if err != nil {
		return err
	}

	log := slog.With(slog.String("component", "replay"))

	m := observable.NewMapWithExpectedSize[string, string](len(s.Operations))
	m.AddInsertListener(func(_ *observable.Map[string, string], key string, value string) {
		log.Info(
			"Inserted entry",
			slog.String("key", key),
			slog.String("value", value),
		)
	})
	m.AddRemoveListener(func(_ *observable.Map[string, string], key string, value string) {
		log.Info(
			"Removed entry",
			slog.String("key", key),
			slog.String("value", value),
		)
	})

	for i, op := range s.Operations {
		switch op.Op {
		case "put":
			m.Put(op.Key, op.Value)
		case "delete":
			m.Delete(op.Key)
		case "clear":
			m.Clear()
		default:
			return errors.Errorf("unknown operation '%s' at index %d", op.Op, i)
		}
	}

	log.Info(
		fmt.Sprintf("Applied %s operations", humanize.Comma(int64(len(s.Operations)))),
		slog.Int("final-size", m.Len()),
	)

	return dumpState(m)
}

func dumpState(m *observable.Map[string, string]) error {
	dump := make([]entryDump, 0, m.Len())
	for _, key := range observable.SortedKeys(m) {
		value, _ := m.Get(key)
		dump = append(dump, entryDump{Key: key, Value: value})
	}

	out, err := yaml.Marshal(dump)
	if err != nil {
		return errors.Wrap(err, "failed to serialize final state")
	}
	_, err = os.Stdout.Write(out)
	return err
}
