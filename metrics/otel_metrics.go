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

package metrics

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/fpfbench/fpfbench/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "fpfbench"

var (
	errorCountErrorKindFolderCreateAttrSet = metric.WithAttributeSet(attribute.NewSet(attribute.String("error_kind", string(ErrorKindFolderCreate))))
	errorCountErrorKindFileCreateAttrSet   = metric.WithAttributeSet(attribute.NewSet(attribute.String("error_kind", string(ErrorKindFileCreate))))
	errorCountErrorKindWriteAttrSet        = metric.WithAttributeSet(attribute.NewSet(attribute.String("error_kind", string(ErrorKindWrite))))
)

type otelMetrics struct {
	filesCreatedCountAtomic *atomic.Int64
	bytesWrittenCountAtomic *atomic.Int64

	errorCountErrorKindFolderCreateAtomic *atomic.Int64
	errorCountErrorKindFileCreateAtomic   *atomic.Int64
	errorCountErrorKindWriteAtomic        *atomic.Int64

	fileLatency      metric.Int64Histogram
	iterationLatency metric.Int64Histogram
}

// NewOTelMetrics creates the instruments on the global meter provider.
// Counters are kept in atomics and reported through observable callbacks so
// that the measured loop only pays for an atomic add.
func NewOTelMetrics() (*otelMetrics, error) {
	meter := otel.Meter(meterName)

	var filesCreatedCountAtomic,
		bytesWrittenCountAtomic,
		errorCountErrorKindFolderCreateAtomic,
		errorCountErrorKindFileCreateAtomic,
		errorCountErrorKindWriteAtomic atomic.Int64

	_, err0 := meter.Int64ObservableCounter("bench/files_created_count",
		metric.WithDescription("The cumulative number of files created and written to their target size."),
		metric.WithUnit(""),
		metric.WithInt64Callback(func(_ context.Context, obsrv metric.Int64Observer) error {
			obsrv.Observe(filesCreatedCountAtomic.Load())
			return nil
		}))

	_, err1 := meter.Int64ObservableCounter("bench/bytes_written_count",
		metric.WithDescription("The cumulative number of bytes written to benchmark files."),
		metric.WithUnit("By"),
		metric.WithInt64Callback(func(_ context.Context, obsrv metric.Int64Observer) error {
			obsrv.Observe(bytesWrittenCountAtomic.Load())
			return nil
		}))

	_, err2 := meter.Int64ObservableCounter("bench/errors_count",
		metric.WithDescription("The cumulative number of failed benchmark steps, by kind."),
		metric.WithUnit(""),
		metric.WithInt64Callback(func(_ context.Context, obsrv metric.Int64Observer) error {
			obsrv.Observe(errorCountErrorKindFolderCreateAtomic.Load(), errorCountErrorKindFolderCreateAttrSet)
			obsrv.Observe(errorCountErrorKindFileCreateAtomic.Load(), errorCountErrorKindFileCreateAttrSet)
			obsrv.Observe(errorCountErrorKindWriteAtomic.Load(), errorCountErrorKindWriteAttrSet)
			return nil
		}))

	fileLatency, err3 := meter.Int64Histogram("bench/file_latency",
		metric.WithDescription("The time to create, fill and close one file."),
		metric.WithUnit("us"),
		metric.WithExplicitBucketBoundaries(100, 250, 500, 1000, 2500, 5000, 10000, 25000, 50000, 100000, 250000, 500000, 1000000))

	iterationLatency, err4 := meter.Int64Histogram("bench/iteration_latency",
		metric.WithDescription("The time of one iteration's file creation loop."),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000, 120000, 300000, 600000, 1800000))

	if err := errors.Join(err0, err1, err2, err3, err4); err != nil {
		return nil, err
	}

	return &otelMetrics{
		filesCreatedCountAtomic:               &filesCreatedCountAtomic,
		bytesWrittenCountAtomic:               &bytesWrittenCountAtomic,
		errorCountErrorKindFolderCreateAtomic: &errorCountErrorKindFolderCreateAtomic,
		errorCountErrorKindFileCreateAtomic:   &errorCountErrorKindFileCreateAtomic,
		errorCountErrorKindWriteAtomic:        &errorCountErrorKindWriteAtomic,
		fileLatency:                           fileLatency,
		iterationLatency:                      iterationLatency,
	}, nil
}

func (o *otelMetrics) FilesCreatedCount(inc int64) {
	if inc < 0 {
		logger.Errorf("Counter metric bench/files_created_count received a negative increment: %d", inc)
		return
	}
	o.filesCreatedCountAtomic.Add(inc)
}

func (o *otelMetrics) BytesWrittenCount(inc int64) {
	if inc < 0 {
		logger.Errorf("Counter metric bench/bytes_written_count received a negative increment: %d", inc)
		return
	}
	o.bytesWrittenCountAtomic.Add(inc)
}

func (o *otelMetrics) ErrorCount(inc int64, kind ErrorKind) {
	if inc < 0 {
		logger.Errorf("Counter metric bench/errors_count received a negative increment: %d", inc)
		return
	}
	switch kind {
	case ErrorKindFolderCreate:
		o.errorCountErrorKindFolderCreateAtomic.Add(inc)
	case ErrorKindFileCreate:
		o.errorCountErrorKindFileCreateAtomic.Add(inc)
	case ErrorKindWrite:
		o.errorCountErrorKindWriteAtomic.Add(inc)
	default:
		logger.Errorf("Counter metric bench/errors_count received an unrecognized error kind: %q", kind)
	}
}

func (o *otelMetrics) FileLatency(ctx context.Context, latency time.Duration) {
	o.fileLatency.Record(ctx, latency.Microseconds())
}

func (o *otelMetrics) IterationLatency(ctx context.Context, latency time.Duration) {
	o.iterationLatency.Record(ctx, latency.Milliseconds())
}
