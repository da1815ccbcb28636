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

package monitor

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/fpfbench/fpfbench/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func freePort(t *testing.T) int64 {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return int64(port)
}

func TestSetupPrometheus_DisabledForNonPositivePort(t *testing.T) {
	for _, port := range []int64{0, -1} {
		opts, shutdownFn := setupPrometheus(port)

		assert.Nil(t, opts)
		assert.Nil(t, shutdownFn)
	}
}

func TestSetupOTelMetricExporters_WithoutPrometheus(t *testing.T) {
	c := &cfg.Config{}

	shutdownFn := SetupOTelMetricExporters(context.Background(), c)

	require.NotNil(t, shutdownFn)
	_, ok := otel.GetMeterProvider().(*sdkmetric.MeterProvider)
	assert.True(t, ok)
	assert.NoError(t, shutdownFn(context.Background()))
}

func TestSetupOTelMetricExporters_ServesPrometheus(t *testing.T) {
	port := freePort(t)
	c := &cfg.Config{Metrics: cfg.MetricsConfig{PrometheusPort: port}}
	shutdownFn := SetupOTelMetricExporters(context.Background(), c)
	require.NotNil(t, shutdownFn)
	counter, err := otel.Meter("monitor_test").Int64Counter("test_counter")
	require.NoError(t, err)
	counter.Add(context.Background(), 7)

	url := fmt.Sprintf("http://127.0.0.1:%d/metrics", port)
	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil || resp.StatusCode != http.StatusOK {
			return false
		}
		body = string(b)
		return true
	}, 5*time.Second, 50*time.Millisecond)

	assert.Contains(t, body, "test_counter")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, shutdownFn(ctx))
}
