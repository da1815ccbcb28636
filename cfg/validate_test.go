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
	"testing"

	"github.com/stretchr/testify/assert"
)

func validLogRotateConfig() LogRotateLoggingConfig {
	return LogRotateLoggingConfig{
		BackupFileCount: 0,
		Compress:        false,
		MaxFileSizeMb:   1,
	}
}

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{LogRotate: validLogRotateConfig()},
		Store:   StoreConfig{Type: LocalStoreType, Root: "/mnt/share"},
	}
}

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "Valid local config",
			modify:  func(*Config) {},
			wantErr: false,
		},
		{
			name: "Valid gcs config",
			modify: func(c *Config) {
				c.Store = StoreConfig{Type: GCSStoreType, Bucket: "bench-bucket"}
			},
			wantErr: false,
		},
		{
			name: "Valid s3 config with endpoint",
			modify: func(c *Config) {
				c.Store = StoreConfig{Type: S3StoreType, Bucket: "bench-bucket", Endpoint: "http://localhost:9000"}
			},
			wantErr: false,
		},
		{
			name: "Local store without root",
			modify: func(c *Config) {
				c.Store.Root = ""
			},
			wantErr: true,
		},
		{
			name: "Object store without bucket",
			modify: func(c *Config) {
				c.Store = StoreConfig{Type: S3StoreType, Root: "prefix"}
			},
			wantErr: true,
		},
		{
			name: "Unknown store",
			modify: func(c *Config) {
				c.Store.Type = "ftp"
			},
			wantErr: true,
		},
		{
			name: "Zero log file size",
			modify: func(c *Config) {
				c.Logging.LogRotate.MaxFileSizeMb = 0
			},
			wantErr: true,
		},
		{
			name: "Negative backup count",
			modify: func(c *Config) {
				c.Logging.LogRotate.BackupFileCount = -1
			},
			wantErr: true,
		},
		{
			name: "Prometheus port too high",
			modify: func(c *Config) {
				c.Metrics.PrometheusPort = 70000
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.modify(&c)

			err := ValidateConfig(&c)

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
