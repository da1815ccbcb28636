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

package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fpfbench/fpfbench/internal/benchmark"
	"github.com/fpfbench/fpfbench/internal/format"
	"github.com/fpfbench/fpfbench/internal/percentile"
	"github.com/fpfbench/fpfbench/internal/size"
	"github.com/rodaine/table"
)

// WriteSummary writes a table of the completed iterations followed by the
// spread of their elapsed times. Incomplete iterations are skipped.
func WriteSummary(w io.Writer, p benchmark.Params, iterations []*benchmark.Iteration) error {
	buf := new(bytes.Buffer)

	fmt.Fprintf(buf, "%d files of %s per folder, written in chunks of %s\n",
		p.FileCount, size.Scaled(p.FileSize), size.Scaled(uint64(p.WriteSize)))

	var elapsed []time.Duration
	tbl := table.New("iteration", "folder", "files", "written", "elapsed", "files/s", "throughput").WithWriter(buf)
	for _, it := range iterations {
		if !it.Completed() {
			continue
		}
		elapsed = append(elapsed, it.Timing.Elapsed)
		tbl.AddRow(
			it.Index,
			it.Folder,
			len(it.Files),
			humanize.IBytes(it.BytesWritten),
			format.Clock(it.Timing.Elapsed),
			filesPerSecond(len(it.Files), it.Timing.Elapsed),
			throughput(it.BytesWritten, it.Timing.Elapsed))
	}

	if len(elapsed) == 0 {
		fmt.Fprintln(buf, "No completed iterations.")
	} else {
		tbl.Print()

		d := percentile.NewDurations(elapsed)
		fmt.Fprintln(buf)
		stats := table.New("iterations", "min elapsed", "p50", "p90", "max", "mean").WithWriter(buf)
		stats.AddRow(
			d.Len(),
			format.Clock(d.Min()),
			format.Clock(d.At(50)),
			format.Clock(d.At(90)),
			format.Clock(d.Max()),
			format.Clock(d.Mean()))
		stats.Print()
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

func filesPerSecond(files int, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "-"
	}
	return format.Rate(float64(files)/elapsed.Seconds(), "files")
}

func throughput(bytes uint64, elapsed time.Duration) string {
	if elapsed <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(float64(bytes)/elapsed.Seconds())) + "/s"
}
