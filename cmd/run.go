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
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/fpfbench/fpfbench/cfg"
	"github.com/fpfbench/fpfbench/common"
	"github.com/fpfbench/fpfbench/internal/benchmark"
	"github.com/fpfbench/fpfbench/internal/logger"
	"github.com/fpfbench/fpfbench/internal/monitor"
	"github.com/fpfbench/fpfbench/internal/report"
	"github.com/fpfbench/fpfbench/internal/store"
	"github.com/fpfbench/fpfbench/internal/store/gcs"
	"github.com/fpfbench/fpfbench/internal/store/local"
	"github.com/fpfbench/fpfbench/internal/store/s3"
	"github.com/fpfbench/fpfbench/metrics"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////
// Helpers
////////////////////////////////////////////////////////////////////////

func rawParams(c *cfg.BenchmarkConfig) benchmark.RawParams {
	return benchmark.RawParams{
		Iterations: c.Iterations,
		FileSize:   c.FileSize,
		WriteSize:  c.WriteSize,
		FileCount:  c.FileCount,
	}
}

// newRand returns the source of file name suffixes. A zero seed means a
// time-based one.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// createStore connects to the configured store. The returned function
// releases the connection.
func createStore(ctx context.Context, c *cfg.StoreConfig) (fs store.FileStore, closeFn func(), err error) {
	closeFn = func() {}
	switch c.Type {
	case cfg.LocalStoreType:
		fs, err = local.New(c.Root)

	case cfg.GCSStoreType:
		client, clientErr := gcs.NewClient(ctx, c.Endpoint)
		if clientErr != nil {
			return nil, closeFn, fmt.Errorf("creating GCS client: %w", clientErr)
		}
		fs = gcs.New(client, c.Bucket, c.Root)
		closeFn = func() {
			if err := client.Close(); err != nil {
				logger.Warnf("Error while closing GCS client: %v", err)
			}
		}

	case cfg.S3StoreType:
		client, clientErr := s3.NewClient(ctx, c.Region, c.Endpoint)
		if clientErr != nil {
			return nil, closeFn, fmt.Errorf("creating S3 client: %w", clientErr)
		}
		fs = s3.New(client, c.Bucket, c.Root)

	default:
		err = fmt.Errorf("unsupported store type: %q", c.Type)
	}
	return
}

func createMetricHandle() metrics.MetricHandle {
	mh, err := metrics.NewOTelMetrics()
	if err != nil {
		logger.Warnf("Error while creating metrics, continuing without them: %v", err)
		return metrics.NewNoopMetrics()
	}
	return mh
}

// openReportWriter returns stdout unless a report file is configured.
func openReportWriter(c *cfg.ReportConfig) (io.Writer, func(), error) {
	if c.FilePath == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(string(c.FilePath))
	if err != nil {
		return nil, nil, fmt.Errorf("creating report file: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			logger.Errorf("Error while closing report file: %v", err)
		}
	}, nil
}

func writeFileList(path cfg.ResolvedPath, iterations []*benchmark.Iteration) error {
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("creating file list: %w", err)
	}
	if err = report.WriteFileList(f, iterations); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

////////////////////////////////////////////////////////////////////////
// Run
////////////////////////////////////////////////////////////////////////

// Run validates the benchmark parameters, connects to the configured store
// and runs every iteration, writing report lines as they complete.
func Run(c cfg.Config) (err error) {
	if err = logger.InitLogFile(c.Logging); err != nil {
		return fmt.Errorf("init log file: %w", err)
	}
	defer logger.Close()

	runID := uuid.NewString()
	logger.SetAttrs(slog.String("run_id", runID))
	logger.Infof("Start fpfbench/%s against the %s store", common.GetVersion(), c.Store.Type)
	if out, marshalErr := yaml.Marshal(&c); marshalErr == nil {
		logger.Debugf("Effective config:\n%s", out)
	}

	p, err := benchmark.Validate(rawParams(&c.Benchmark))
	if err != nil {
		logger.Errorf("Invalid benchmark parameters: %v", err)
		return err
	}
	logger.Infof("Run %s: %d iteration(s) of %d files, file size %d, write size %d",
		runID, p.Iterations, p.FileCount, p.FileSize, p.WriteSize)

	ctx := context.Background()
	shutdownFn := monitor.SetupOTelMetricExporters(ctx, &c)
	defer func() {
		if shutdownErr := shutdownFn(ctx); shutdownErr != nil {
			logger.Errorf("Error while shutting down metric exporters: %v", shutdownErr)
		}
	}()

	fs, closeStore, err := createStore(ctx, &c.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	reportW, closeReport, err := openReportWriter(&c.Report)
	if err != nil {
		return err
	}
	defer closeReport()

	driver := benchmark.NewDriver(fs, benchmark.DriverConfig{
		FolderPrefix: c.Benchmark.FolderPrefix,
		Rand:         newRand(c.Benchmark.Seed),
		Metrics:      createMetricHandle(),
		Reporters:    []benchmark.Reporter{report.NewSink(reportW, c.Report.Format)},
	})

	iterations, runErr := driver.Run(ctx, p)

	// The list covers partial iterations too, so that a failed run can be
	// cleaned up.
	if c.Report.FileList != "" {
		if err = writeFileList(c.Report.FileList, iterations); err != nil {
			logger.Errorf("Error while writing file list: %v", err)
		}
	}

	if runErr != nil {
		logger.Errorf("Benchmark failed: %v", runErr)
		return runErr
	}

	if c.Report.Summary {
		if err = report.WriteSummary(reportW, p, iterations); err != nil {
			return err
		}
	}
	return nil
}
