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
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fpfbench/fpfbench/cfg"
	"github.com/fpfbench/fpfbench/internal/benchmark"
	"github.com/fpfbench/fpfbench/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, root string) cfg.Config {
	t.Helper()
	out := t.TempDir()
	t.Cleanup(func() {
		// Send logs back to stderr before the temp dir goes away.
		_ = logger.InitLogFile(cfg.LoggingConfig{})
	})
	return cfg.Config{
		Benchmark: cfg.BenchmarkConfig{
			FileCount:    50,
			FileSize:     "1K",
			FolderPrefix: "PerfFilesPerFolder",
			Iterations:   2,
			Seed:         1,
			WriteSize:    "512",
		},
		Logging: cfg.LoggingConfig{
			FilePath:  cfg.ResolvedPath(filepath.Join(out, "fpfbench.log")),
			Format:    cfg.TextLogFormat,
			LogRotate: cfg.LogRotateLoggingConfig{BackupFileCount: 1, MaxFileSizeMb: 1},
			Severity:  cfg.InfoLogSeverity,
		},
		Report: cfg.ReportConfig{
			FileList: cfg.ResolvedPath(filepath.Join(out, "files.txt")),
			FilePath: cfg.ResolvedPath(filepath.Join(out, "report.txt")),
			Format:   cfg.HTMLReportFormat,
			Summary:  true,
		},
		Store: cfg.StoreConfig{
			Root: root,
			Type: cfg.LocalStoreType,
		},
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestRun_LocalStore(t *testing.T) {
	root := t.TempDir()
	c := testConfig(t, root)

	err := Run(c)

	require.NoError(t, err)
	for _, folder := range []string{"PerfFilesPerFolder_0", "PerfFilesPerFolder_1"} {
		entries, err := os.ReadDir(filepath.Join(root, folder))
		require.NoError(t, err)
		assert.Len(t, entries, 50)
		for _, e := range entries {
			info, err := e.Info()
			require.NoError(t, err)
			assert.Equal(t, int64(1024), info.Size())
		}
	}

	reportLines := readLines(t, string(c.Report.FilePath))
	require.Greater(t, len(reportLines), 2)
	re := regexp.MustCompile(`^Created 50 files \(size 1K\) in \d{2}:\d{2}:\d{2}\.\d{3} \(\d+ms\)<br/>$`)
	assert.Regexp(t, re, reportLines[0])
	assert.Regexp(t, re, reportLines[1])
	assert.Contains(t, strings.Join(reportLines[2:], "\n"), "throughput")

	fileList := readLines(t, string(c.Report.FileList))
	assert.Len(t, fileList, 100)
	for _, name := range fileList {
		assert.FileExists(t, filepath.Join(root, name))
	}

	logData, err := os.ReadFile(string(c.Logging.FilePath))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "Created 50 files")
	assert.Contains(t, string(logData), "run_id=")
}

func TestRun_ExistingFolderIsReused(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "PerfFilesPerFolder_0"), 0755))
	c := testConfig(t, root)
	c.Benchmark.Iterations = 1

	err := Run(c)

	require.NoError(t, err)
	entries, err := os.ReadDir(filepath.Join(root, "PerfFilesPerFolder_0"))
	require.NoError(t, err)
	assert.Len(t, entries, 50)
}

func TestRun_InvalidParametersTouchNothing(t *testing.T) {
	root := t.TempDir()
	c := testConfig(t, root)
	c.Benchmark.FileCount = 5001

	err := Run(c)

	assert.True(t, errors.Is(err, benchmark.ErrInvalidParameter))
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoFileExists(t, string(c.Report.FilePath))
}

func TestRun_MissingRoot(t *testing.T) {
	c := testConfig(t, filepath.Join(t.TempDir(), "missing"))

	err := Run(c)

	assert.Error(t, err)
}

func TestRun_LogsEffectiveConfigAtDebug(t *testing.T) {
	c := testConfig(t, t.TempDir())
	c.Benchmark.Iterations = 1
	c.Logging.Severity = cfg.DebugLogSeverity

	require.NoError(t, Run(c))

	logData, err := os.ReadFile(string(c.Logging.FilePath))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "Effective config")
	assert.Contains(t, string(logData), "file-count: 50")
}
