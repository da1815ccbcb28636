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

package size_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/fpfbench/fpfbench/internal/size"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

////////////////////////////////////////////////////////////////////////
// Tests
////////////////////////////////////////////////////////////////////////

func TestParse_ValidInputs(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		text     string
		expected uint64
	}{
		{"0", 0},
		{"1", 1},
		{"128", 128},
		{"4096", 4096},
		{"10485761", 10485761},
		{"4K", 4 * 1024},
		{"4k", 4 * 1024},
		{"64K", 65536},
		{"0K", 0},
		{"10M", 10 * 1024 * 1024},
		{"10m", 10 * 1024 * 1024},
		{"007", 7},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()

			v, err := size.Parse(tc.text)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestParse_DigitsWithEveryUnit(t *testing.T) {
	t.Parallel()
	for _, digits := range []uint64{0, 1, 3, 50, 999, 5000, 65536} {
		d := strconv.FormatUint(digits, 10)
		for suffix, mult := range map[string]uint64{"": 1, "k": 1024, "K": 1024, "m": 1 << 20, "M": 1 << 20} {
			v, err := size.Parse(d + suffix)

			require.NoError(t, err, "text: %s%s", d, suffix)
			assert.Equal(t, digits*mult, v, "text: %s%s", d, suffix)
		}
	}
}

func TestParse_InvalidInputs(t *testing.T) {
	t.Parallel()
	testCases := []string{
		"",
		"K",
		"M",
		"-1",
		"+1",
		"1.5K",
		"4KB",
		"4G",
		"4 K",
		" 4K",
		"4K ",
		"0x10",
		"1_000",
		"abc",
		"K4",
		"18446744073709551616",
		"18446744073709551615K",
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("case_%d", idx), func(t *testing.T) {
			t.Parallel()

			_, err := size.Parse(tc)

			assert.ErrorIs(t, err, size.ErrInvalidSize, "text: %q", tc)
		})
	}
}

func TestParseUint32(t *testing.T) {
	t.Parallel()

	v, err := size.ParseUint32("64K")
	require.NoError(t, err)
	assert.Equal(t, uint32(65536), v)

	v, err = size.ParseUint32("4095M")
	require.NoError(t, err)
	assert.Equal(t, uint32(4095<<20), v)

	_, err = size.ParseUint32("4096M")
	assert.ErrorIs(t, err, size.ErrInvalidSize)

	_, err = size.ParseUint32("4x")
	assert.ErrorIs(t, err, size.ErrInvalidSize)
}

func TestScaled(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		v        uint64
		expected string
	}{
		{0, "0"},
		{1, "1"},
		{1023, "1023"},
		{1024, "1K"},
		{4096, "4K"},
		{1536, "1.50K"},
		{1 << 20, "1M"},
		{10 << 20, "10M"},
		{10<<20 + 1, "10.00M"},
		{3 << 30, "3G"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, size.Scaled(tc.v), "v: %d", tc.v)
	}
}

func TestScaled_ExactMultiplesRoundTrip(t *testing.T) {
	t.Parallel()
	for _, v := range []uint64{1, 512, 4 << 10, 64 << 10, 1 << 20, 10 << 20} {
		parsed, err := size.Parse(size.Scaled(v))

		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
}
