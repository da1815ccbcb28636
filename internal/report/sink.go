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

// Package report writes benchmark results for people: the per-iteration
// report lines, the list of generated files and an end-of-run summary.
package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/fpfbench/fpfbench/cfg"
)

const htmlLineBreak = "<br/>"

// Sink writes report lines to a writer, one per line, in text or HTML form.
// It implements benchmark.Reporter.
type Sink struct {
	mu     sync.Mutex
	w      io.Writer
	format cfg.ReportFormat
}

func NewSink(w io.Writer, format cfg.ReportFormat) *Sink {
	return &Sink{w: w, format: format}
}

func (s *Sink) Report(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	switch s.format {
	case cfg.HTMLReportFormat:
		_, err = fmt.Fprintf(s.w, "%s%s\n", line, htmlLineBreak)
	default:
		_, err = fmt.Fprintln(s.w, line)
	}
	if err != nil {
		return fmt.Errorf("writing report line: %w", err)
	}
	return nil
}
