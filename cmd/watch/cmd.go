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
	"io"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/obkit/observable/common/process"
)

var (
	stateFile   string
	metricsAddr string

	Cmd = &cobra.Command{
		Use:   "watch",
		Short: "Reconcile a map against a state file",
		Long: `Keep an observable map synchronized with a YAML state file: every file
change is diffed against the map and applied as individual put/delete
operations, so listeners narrate the drift`,
		Args: cobra.NoArgs,
		RunE: exec,
	}
)

func init() {
	Cmd.Flags().StringVarP(&stateFile, "state-file", "f", "", "State file to watch (YAML)")
	Cmd.Flags().StringVarP(&metricsAddr, "metrics-addr", "m", "localhost:9632", "Bind address for the metrics endpoint")
	_ = Cmd.MarkFlagRequired("state-file")
}

func exec(*cobra.Command, []string) error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(stateFile)

	reloadCh := make(chan struct{}, 1)
	v.OnConfigChange(func(_ fsnotify.Event) {
		select {
		case reloadCh <- struct{}{}:
		default:
			// a reload is already pending
		}
	})
	v.WatchConfig()

	process.RunProcess(func() (io.Closer, error) {
		return newWatcher(v, metricsAddr, reloadCh)
	})
	return nil
}
