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

// Package size parses and renders human-readable byte sizes such as "4K" and
// "10M".
//
// Accepted input is a decimal magnitude optionally followed by a single
// case-insensitive unit letter: K (1024 bytes) or M (1024*1024 bytes). Parsing
// never clamps; range checks belong to the caller.
package size

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

const (
	Kilobyte uint64 = 1 << 10
	Megabyte uint64 = 1 << 20
	Gigabyte uint64 = 1 << 30
)

// ErrInvalidSize is returned (wrapped) for any text that is not a decimal
// magnitude with an optional K or M suffix, or that does not fit the result
// type.
var ErrInvalidSize = errors.New("invalid size")

// Parse returns the number of bytes described by text.
func Parse(text string) (uint64, error) {
	if text == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidSize)
	}

	digits := text
	multiplier := uint64(1)
	switch text[len(text)-1] {
	case 'k', 'K':
		multiplier = Kilobyte
		digits = text[:len(text)-1]
	case 'm', 'M':
		multiplier = Megabyte
		digits = text[:len(text)-1]
	}

	if digits == "" {
		return 0, fmt.Errorf("%w: %q has no magnitude", ErrInvalidSize, text)
	}
	// strconv accepts a leading '+' and underscores in some bases; only plain
	// decimal digits are valid here.
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSize, text)
		}
	}

	magnitude, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidSize, text, err)
	}

	hi, v := bits.Mul64(magnitude, multiplier)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %q overflows 64 bits", ErrInvalidSize, text)
	}
	return v, nil
}

// ParseUint32 is Parse constrained to a 32-bit result, used for write chunk
// sizing.
func ParseUint32(text string) (uint32, error) {
	v, err := Parse(text)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %q overflows 32 bits", ErrInvalidSize, text)
	}
	return uint32(v), nil
}

// Scaled presents v with the largest unit that keeps the magnitude at least
// one. Exact multiples print without a fraction ("4K", "10M"), so the output
// of Scaled for those values is accepted by Parse.
func Scaled(v uint64) string {
	switch {
	case v >= Gigabyte:
		return scaled(v, Gigabyte, "G")

	case v >= Megabyte:
		return scaled(v, Megabyte, "M")

	case v >= Kilobyte:
		return scaled(v, Kilobyte, "K")

	default:
		return strconv.FormatUint(v, 10)
	}
}

func scaled(v, unit uint64, suffix string) string {
	if v%unit == 0 {
		return strconv.FormatUint(v/unit, 10) + suffix
	}
	return fmt.Sprintf("%.2f%s", float64(v)/float64(unit), suffix)
}
