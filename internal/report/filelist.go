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
	"bufio"
	"fmt"
	"io"

	"github.com/fpfbench/fpfbench/internal/benchmark"
)

// WriteFileList writes every file name generated by the given iterations, one
// per line, so that an external job can delete them.
func WriteFileList(w io.Writer, iterations []*benchmark.Iteration) error {
	bw := bufio.NewWriter(w)
	for _, it := range iterations {
		for _, name := range it.Files {
			if _, err := fmt.Fprintln(bw, name); err != nil {
				return fmt.Errorf("writing file list: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing file list: %w", err)
	}
	return nil
}
