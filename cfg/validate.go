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

package cfg

import (
	"fmt"
)

const (
	// MaxPort is the largest valid TCP port.
	MaxPort = 65535
)

func isValidLogRotateConfig(config *LogRotateLoggingConfig) error {
	if config.MaxFileSizeMb <= 0 {
		return fmt.Errorf("max-file-size-mb should be atleast 1")
	}
	if config.BackupFileCount < 0 {
		return fmt.Errorf("backup-file-count should be 0 (to retain all backup files) or a positive value")
	}
	return nil
}

func isValidStoreConfig(config *StoreConfig) error {
	switch config.Type {
	case LocalStoreType:
		if config.Root == "" {
			return fmt.Errorf("root must be set for the %s store", config.Type)
		}
	case GCSStoreType, S3StoreType:
		if config.Bucket == "" {
			return fmt.Errorf("bucket must be set for the %s store", config.Type)
		}
	default:
		return fmt.Errorf("unsupported store type: %q", config.Type)
	}
	return nil
}

func isValidMetricsConfig(config *MetricsConfig) error {
	if config.PrometheusPort < 0 || config.PrometheusPort > MaxPort {
		return fmt.Errorf("prometheus-port should be within [0, %d]", MaxPort)
	}
	return nil
}

// ValidateConfig checks the settings that are not part of the benchmark
// parameters. The benchmark parameters are validated by the benchmark itself
// before any file I/O.
func ValidateConfig(config *Config) error {
	var err error

	if err = isValidLogRotateConfig(&config.Logging.LogRotate); err != nil {
		return fmt.Errorf("error parsing log-rotate config: %w", err)
	}

	if err = isValidStoreConfig(&config.Store); err != nil {
		return fmt.Errorf("error parsing store config: %w", err)
	}

	if err = isValidMetricsConfig(&config.Metrics); err != nil {
		return fmt.Errorf("error parsing metrics config: %w", err)
	}

	return nil
}
