// Copyright 2026 Google LLC
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

package cmd

import (
	"fmt"
	"os"

	"github.com/fpfbench/fpfbench/cfg"
	"github.com/fpfbench/fpfbench/common"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the fpfbench command. Settings come from the flags and
// from the optional yaml file named by --config-file; flags win. The resolved
// and validated configuration is handed to runFn.
func NewRootCmd(runFn func(cfg.Config) error) (*cobra.Command, error) {
	var (
		configObj cfg.Config
		cfgFile   string
		cfgErr    error
		v         = viper.New()
	)

	rootCmd := &cobra.Command{
		Use:   "fpfbench [flags]",
		Short: "Measure how fast a file server creates many files in one folder",
		Long: `fpfbench creates a folder on the target store, fills it with a fixed
number of files of a fixed size using a fixed write size, and reports how long
the file creation took. Each iteration uses a new folder.`,
		Version:       common.GetVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			return runFn(configObj)
		},
	}

	initConfig := func() {
		if cfgFile != "" {
			v.SetConfigFile(cfgFile)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				cfgErr = fmt.Errorf("error while reading the config file: %w", err)
				return
			}
		}

		err := v.Unmarshal(&configObj, viper.DecodeHook(cfg.DecodeHook()), func(decoderConfig *mapstructure.DecoderConfig) {
			decoderConfig.TagName = "yaml"
		})
		if err != nil {
			cfgErr = fmt.Errorf("error while unmarshaling the config: %w", err)
			return
		}

		if err = cfg.ValidateConfig(&configObj); err != nil {
			cfgErr = fmt.Errorf("invalid config: %w", err)
		}
	}
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "Path to a yaml config file. Flags take precedence over its values.")
	if err := cfg.BindFlags(v, rootCmd.PersistentFlags()); err != nil {
		return nil, fmt.Errorf("error while binding flags: %w", err)
	}

	return rootCmd, nil
}

// Execute runs the benchmark as configured by the command line and exits
// non-zero on failure.
func Execute() {
	rootCmd, err := NewRootCmd(Run)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err = rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
