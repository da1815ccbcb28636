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

// Package metrics records benchmark progress as OpenTelemetry instruments.
// The exporters are configured separately, in internal/monitor.
package metrics

import (
	"context"
	"time"
)

// ErrorKind classifies a failed benchmark step.
type ErrorKind string

const (
	ErrorKindFolderCreate ErrorKind = "folder_create"
	ErrorKindFileCreate   ErrorKind = "file_create"
	ErrorKindWrite        ErrorKind = "write"
)

// MetricHandle is the set of instruments the workload driver updates. Every
// method is cheap enough to call inside the measured loop.
type MetricHandle interface {
	// FilesCreatedCount counts files created and written to their target size.
	FilesCreatedCount(inc int64)

	// BytesWrittenCount counts bytes handed to the store's write streams.
	BytesWrittenCount(inc int64)

	// ErrorCount counts failed steps by kind.
	ErrorCount(inc int64, kind ErrorKind)

	// FileLatency records the time to create, fill and close one file.
	FileLatency(ctx context.Context, latency time.Duration)

	// IterationLatency records the time of one iteration's file loop.
	IterationLatency(ctx context.Context, latency time.Duration)
}
