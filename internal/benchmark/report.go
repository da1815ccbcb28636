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

package benchmark

import (
	"fmt"
	"time"

	"github.com/fpfbench/fpfbench/internal/format"
	"github.com/fpfbench/fpfbench/internal/size"
)

// FormatReport renders the line emitted for a completed iteration.
func FormatReport(fileCount int, fileSize uint64, elapsed time.Duration) string {
	return fmt.Sprintf("Created %d files (size %s) in %s (%dms)",
		fileCount, size.Scaled(fileSize), format.Clock(elapsed), elapsed.Milliseconds())
}
