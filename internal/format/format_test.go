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

package format_test

import (
	"testing"
	"time"

	"github.com/fpfbench/fpfbench/internal/format"
	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		d        time.Duration
		expected string
	}{
		{0, "00:00:00.000"},
		{999 * time.Microsecond, "00:00:00.000"},
		{7 * time.Millisecond, "00:00:00.007"},
		{1500 * time.Millisecond, "00:00:01.500"},
		{61*time.Second + 42*time.Millisecond, "00:01:01.042"},
		{time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond, "01:02:03.004"},
		{125 * time.Hour, "125:00:00.000"},
		{-time.Second, "00:00:00.000"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, format.Clock(tc.d), "d: %v", tc.d)
	}
}

func TestRate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.50 files/s", format.Rate(0.5, "files"))
	assert.Equal(t, "12.00 files/s", format.Rate(12, "files"))
	assert.Equal(t, "2.50 Kfiles/s", format.Rate(2500, "files"))
	assert.Equal(t, "3.00 Mops/s", format.Rate(3e6, "ops"))
	assert.Equal(t, "1.20 Gops/s", format.Rate(1.2e9, "ops"))
}
