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
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Benchmark BenchmarkConfig `yaml:"benchmark"`

	Logging LoggingConfig `yaml:"logging"`

	Metrics MetricsConfig `yaml:"metrics"`

	Report ReportConfig `yaml:"report"`

	Store StoreConfig `yaml:"store"`
}

type BenchmarkConfig struct {
	FileCount int64 `yaml:"file-count"`

	FileSize string `yaml:"file-size"`

	FolderPrefix string `yaml:"folder-prefix"`

	Iterations int64 `yaml:"iterations"`

	Seed int64 `yaml:"seed"`

	WriteSize string `yaml:"write-size"`
}

type LogRotateLoggingConfig struct {
	BackupFileCount int64 `yaml:"backup-file-count"`

	Compress bool `yaml:"compress"`

	MaxFileSizeMb int64 `yaml:"max-file-size-mb"`
}

type LoggingConfig struct {
	FilePath ResolvedPath `yaml:"file-path"`

	Format LogFormat `yaml:"format"`

	LogRotate LogRotateLoggingConfig `yaml:"log-rotate"`

	Severity LogSeverity `yaml:"severity"`
}

type MetricsConfig struct {
	PrometheusPort int64 `yaml:"prometheus-port"`
}

type ReportConfig struct {
	FileList ResolvedPath `yaml:"file-list"`

	FilePath ResolvedPath `yaml:"file-path"`

	Format ReportFormat `yaml:"format"`

	Summary bool `yaml:"summary"`
}

type StoreConfig struct {
	Bucket string `yaml:"bucket"`

	Endpoint string `yaml:"endpoint"`

	Region string `yaml:"region"`

	Root string `yaml:"root"`

	Type StoreType `yaml:"type"`
}

func BindFlags(v *viper.Viper, flagSet *pflag.FlagSet) error {
	var err error

	flagSet.StringP("bucket", "", "", "Bucket holding the benchmark folders. Required for the gcs and s3 stores.")

	err = v.BindPFlag("store.bucket", flagSet.Lookup("bucket"))
	if err != nil {
		return err
	}

	flagSet.StringP("endpoint", "", "", "Custom endpoint of the object store, e.g. a local emulator. Empty means the provider default.")

	err = v.BindPFlag("store.endpoint", flagSet.Lookup("endpoint"))
	if err != nil {
		return err
	}

	flagSet.IntP("filecount", "", 2000, "Number of files created in each iteration's folder. Must be within [50, 5000].")

	err = v.BindPFlag("benchmark.file-count", flagSet.Lookup("filecount"))
	if err != nil {
		return err
	}

	flagSet.StringP("file-list", "", "", "If set, every generated file name is written to this file, one per line, for later cleanup.")

	err = v.BindPFlag("report.file-list", flagSet.Lookup("file-list"))
	if err != nil {
		return err
	}

	flagSet.StringP("filesize", "", "4K", "Target size of each created file, e.g. 512, 4K or 10M. Must be within [1, 10M].")

	err = v.BindPFlag("benchmark.file-size", flagSet.Lookup("filesize"))
	if err != nil {
		return err
	}

	flagSet.StringP("folder-prefix", "", "PerfFilesPerFolder", "Prefix of the per-iteration folder names. The iteration index is appended after an underscore.")

	err = v.BindPFlag("benchmark.folder-prefix", flagSet.Lookup("folder-prefix"))
	if err != nil {
		return err
	}

	flagSet.IntP("iterations", "", 1, "Number of benchmark iterations. Each iteration uses its own folder.")

	err = v.BindPFlag("benchmark.iterations", flagSet.Lookup("iterations"))
	if err != nil {
		return err
	}

	flagSet.IntP("log-backup-file-count", "", 10, "The maximum number of backup log files to retain after they have been rotated. 0 retains all backups.")

	err = v.BindPFlag("logging.log-rotate.backup-file-count", flagSet.Lookup("log-backup-file-count"))
	if err != nil {
		return err
	}

	flagSet.BoolP("log-compress", "", true, "Compress rotated log files using gzip.")

	err = v.BindPFlag("logging.log-rotate.compress", flagSet.Lookup("log-compress"))
	if err != nil {
		return err
	}

	flagSet.StringP("log-file", "", "", "The file for storing logs. When not provided, logs are printed to stderr.")

	err = v.BindPFlag("logging.file-path", flagSet.Lookup("log-file"))
	if err != nil {
		return err
	}

	flagSet.StringP("log-format", "", "text", "The format of the log output. Value can be 'text' or 'json'.")

	err = v.BindPFlag("logging.format", flagSet.Lookup("log-format"))
	if err != nil {
		return err
	}

	flagSet.IntP("log-max-file-size-mb", "", 512, "The maximum size in megabytes that a log file can reach before it is rotated.")

	err = v.BindPFlag("logging.log-rotate.max-file-size-mb", flagSet.Lookup("log-max-file-size-mb"))
	if err != nil {
		return err
	}

	flagSet.StringP("log-severity", "", "info", "Specifies the logging severity expressed as one of [trace, debug, info, warning, error, off]")

	err = v.BindPFlag("logging.severity", flagSet.Lookup("log-severity"))
	if err != nil {
		return err
	}

	flagSet.IntP("prometheus-port", "", 0, "Expose Prometheus metrics endpoint on this port and a path of /metrics. 0 disables the endpoint.")

	err = v.BindPFlag("metrics.prometheus-port", flagSet.Lookup("prometheus-port"))
	if err != nil {
		return err
	}

	flagSet.StringP("region", "", "us-east-1", "Region of the s3 bucket.")

	err = v.BindPFlag("store.region", flagSet.Lookup("region"))
	if err != nil {
		return err
	}

	flagSet.StringP("report-file", "", "", "The file receiving the human-readable report lines. When not provided, the report is printed to stdout.")

	err = v.BindPFlag("report.file-path", flagSet.Lookup("report-file"))
	if err != nil {
		return err
	}

	flagSet.StringP("report-format", "", "text", "The format of the report lines. Value can be 'text' or 'html'.")

	err = v.BindPFlag("report.format", flagSet.Lookup("report-format"))
	if err != nil {
		return err
	}

	flagSet.StringP("root", "", "", "Folder under which the per-iteration folders are created. For the local store this is typically the mount point of the file server under test; for object stores it is a key prefix.")

	err = v.BindPFlag("store.root", flagSet.Lookup("root"))
	if err != nil {
		return err
	}

	flagSet.IntP("seed", "", 0, "Seed of the random source used for file name suffixes. 0 seeds from the current time.")

	err = v.BindPFlag("benchmark.seed", flagSet.Lookup("seed"))
	if err != nil {
		return err
	}

	flagSet.StringP("store", "", "local", "The file store under test. Value can be 'local', 'gcs' or 's3'.")

	err = v.BindPFlag("store.type", flagSet.Lookup("store"))
	if err != nil {
		return err
	}

	flagSet.BoolP("summary", "", false, "Print a summary table across all iterations once the run has finished.")

	err = v.BindPFlag("report.summary", flagSet.Lookup("summary"))
	if err != nil {
		return err
	}

	flagSet.StringP("writesize", "", "4K", "Size of each write call, e.g. 128, 4K or 64K. Must be within [128, 64K].")

	err = v.BindPFlag("benchmark.write-size", flagSet.Lookup("writesize"))
	if err != nil {
		return err
	}

	return nil
}
