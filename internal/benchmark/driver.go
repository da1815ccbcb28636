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

// Package benchmark creates many files in one folder of a store.FileStore and
// times it.
//
// Each iteration creates the folder <prefix>_<iteration>, then for file
// indexes 1..FileCount generates a name, creates the file, checks that it
// exists and writes it to the target size with a fixed buffer. The elapsed
// time of the file loop is reported as one line:
//
//	Created 2000 files (size 4K) in 00:00:07.250 (7250ms)
//
// Everything runs on the calling goroutine. The first failure ends the run.
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/fpfbench/fpfbench/internal/logger"
	"github.com/fpfbench/fpfbench/internal/store"
	"github.com/fpfbench/fpfbench/metrics"
	"github.com/jacobsa/timeutil"
)

const DefaultFolderPrefix = "PerfFilesPerFolder"

// Reporter receives the report line of every completed iteration.
type Reporter interface {
	Report(line string) error
}

type DriverConfig struct {
	// FolderPrefix names the per-iteration folders. Defaults to
	// DefaultFolderPrefix.
	FolderPrefix string

	// Clock times the file loop. Defaults to the real clock.
	Clock timeutil.Clock

	// Rand supplies file name suffixes. Defaults to a time-seeded source.
	Rand *rand.Rand

	// Metrics defaults to a no-op handle.
	Metrics metrics.MetricHandle

	// Reporters get each report line in addition to the INFO log.
	Reporters []Reporter
}

// Timing covers the file loop of one iteration. Start is taken once the
// folder has been created and found to exist.
type Timing struct {
	Start   time.Time
	End     time.Time
	Elapsed time.Duration
}

// Iteration is the outcome of one folder's worth of work.
type Iteration struct {
	Index  int
	Folder string

	// Files lists every generated name in creation order, including the one
	// that failed, if any, so that callers can clean up.
	Files []string

	BytesWritten uint64

	// Timing and Report are set only for a completed iteration.
	Timing Timing
	Report string
}

// Completed reports whether the iteration created all of its files.
func (it *Iteration) Completed() bool {
	return it.Report != ""
}

type Driver struct {
	store        store.FileStore
	folderPrefix string
	clock        timeutil.Clock
	rng          *rand.Rand
	metrics      metrics.MetricHandle
	reporters    []Reporter
}

func NewDriver(s store.FileStore, c DriverConfig) *Driver {
	d := &Driver{
		store:        s,
		folderPrefix: c.FolderPrefix,
		clock:        c.Clock,
		rng:          c.Rand,
		metrics:      c.Metrics,
		reporters:    c.Reporters,
	}
	if d.folderPrefix == "" {
		d.folderPrefix = DefaultFolderPrefix
	}
	if d.clock == nil {
		d.clock = timeutil.RealClock()
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.metrics == nil {
		d.metrics = metrics.NewNoopMetrics()
	}
	return d
}

// FolderName returns the folder used by the given 0-based iteration.
func (d *Driver) FolderName(iteration int) string {
	return fmt.Sprintf("%s_%d", d.folderPrefix, iteration)
}

// Run performs p.Iterations iterations in sequence and stops at the first
// error. The returned slice holds every iteration that got as far as creating
// its folder, the failed one last.
func (d *Driver) Run(ctx context.Context, p Params) ([]*Iteration, error) {
	var iterations []*Iteration
	for i := 0; i < p.Iterations; i++ {
		it, err := d.RunIteration(ctx, p, i)
		if it != nil {
			iterations = append(iterations, it)
		}
		if err != nil {
			return iterations, fmt.Errorf("iteration %d: %w", i, err)
		}
	}
	return iterations, nil
}

// RunIteration creates one folder and fills it with p.FileCount files. The
// returned Iteration is nil only when the folder could not be created.
func (d *Driver) RunIteration(ctx context.Context, p Params, iteration int) (*Iteration, error) {
	folder := d.FolderName(iteration)
	if err := d.createFolder(ctx, folder); err != nil {
		d.metrics.ErrorCount(1, metrics.ErrorKindFolderCreate)
		return nil, err
	}

	it := &Iteration{
		Index:  iteration,
		Folder: folder,
		Files:  make([]string, 0, p.FileCount),
	}
	buf := make([]byte, p.WriteSize)

	start := d.clock.Now()
	for index := 1; index <= p.FileCount; index++ {
		name := NextName(folder, index, d.rng)
		it.Files = append(it.Files, name)
		FillPattern(buf, Prefix(index)[0])

		fileStart := d.clock.Now()
		n, err := d.writeFile(ctx, name, buf, p.FileSize)
		it.BytesWritten += n
		d.metrics.BytesWrittenCount(int64(n))
		if err != nil {
			d.countError(err)
			return it, err
		}
		d.metrics.FilesCreatedCount(1)
		d.metrics.FileLatency(ctx, d.clock.Now().Sub(fileStart))
	}
	end := d.clock.Now()

	it.Timing = Timing{Start: start, End: end, Elapsed: end.Sub(start)}
	it.Report = FormatReport(p.FileCount, p.FileSize, it.Timing.Elapsed)
	d.metrics.IterationLatency(ctx, it.Timing.Elapsed)

	logger.Infof("%s", it.Report)
	for _, r := range d.reporters {
		if err := r.Report(it.Report); err != nil {
			return it, fmt.Errorf("report iteration %d: %w", iteration, err)
		}
	}
	return it, nil
}

// createFolder tolerates a folder left by an earlier run: file names carry a
// random suffix, so reuse cannot collide.
func (d *Driver) createFolder(ctx context.Context, folder string) error {
	err := d.store.CreateFolder(ctx, folder)
	switch {
	case errors.Is(err, store.ErrFolderExists):
		logger.Warnf("Folder %s already exists, reusing it", folder)
	case err != nil:
		return fmt.Errorf("%w: %s: %w", ErrFolderCreate, folder, err)
	}

	ok, err := d.store.Exists(ctx, folder)
	if err != nil {
		return fmt.Errorf("%w: %s: checking existence: %w", ErrFolderCreate, folder, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s does not exist after create", ErrFolderCreate, folder)
	}
	return nil
}

// writeFile creates name, checks it exists and writes it to target bytes
// from buf. The write stream is closed on every path; a close failure is a
// write failure.
func (d *Driver) writeFile(ctx context.Context, name string, buf []byte, target uint64) (n uint64, err error) {
	if err = d.store.CreateFile(ctx, name); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrFileCreate, name, err)
	}

	ok, err := d.store.Exists(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: checking existence: %w", ErrFileCreate, name, err)
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s does not exist after create", ErrFileCreate, name)
	}

	w, err := d.store.OpenForWrite(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("%w: opening %s: %w", ErrWrite, name, err)
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrWrite, name, closeErr)
		}
	}()

	n, err = WriteToSize(w, buf, target)
	if err != nil {
		return n, fmt.Errorf("%s: %w", name, err)
	}
	logger.Tracef("Wrote %d bytes to %s", n, name)
	return n, nil
}

func (d *Driver) countError(err error) {
	switch {
	case errors.Is(err, ErrFileCreate):
		d.metrics.ErrorCount(1, metrics.ErrorKindFileCreate)
	case errors.Is(err, ErrWrite):
		d.metrics.ErrorCount(1, metrics.ErrorKindWrite)
	}
}
