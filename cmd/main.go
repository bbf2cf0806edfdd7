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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/obkit/observable/cmd/replay"
	"github.com/obkit/observable/cmd/watch"
	"github.com/obkit/observable/common/logging"
)

var (
	logLevelStr string

	rootCmd = &cobra.Command{
		Use:               "obkit",
		Short:             "Observable collections tooling",
		Long:              `Tools to drive and observe mutation scenarios against observable maps`,
		PersistentPreRunE: configureLogLevel,
	}
)

func configureLogLevel(_ *cobra.Command, _ []string) error {
	logLevel, err := logging.ParseLogLevel(logLevelStr)
	if err != nil {
		return err
	}
	logging.LogLevel = logLevel
	logging.ConfigureLogger()
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevelStr, "log-level", "l", logging.DefaultLogLevel.String(), "Set logging level [debug|info|warn|error]")
	rootCmd.PersistentFlags().BoolVarP(&logging.LogJSON, "log-json", "j", false, "Print logs in JSON format")

	rootCmd.AddCommand(replay.Cmd)
	rootCmd.AddCommand(watch.Cmd)
}

func main() {
	if _, err := maxprocs.Set(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
