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

package percentile

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// Durations summarizes a set of observed iteration times. The zero value has
// no observations.
type Durations struct {
	sorted []time.Duration
}

// NewDurations copies and sorts vals.
func NewDurations(vals []time.Duration) *Durations {
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	return &Durations{sorted: sorted}
}

func (d *Durations) Len() int { return len(d.sorted) }

func (d *Durations) Min() time.Duration { return d.At(0) }

func (d *Durations) Max() time.Duration { return d.At(100) }

// At returns the pth percentile, or zero when there are no observations.
func (d *Durations) At(p int) time.Duration {
	if len(d.sorted) == 0 {
		return 0
	}
	return Duration(d.sorted, p)
}

// Mean returns the arithmetic mean, or zero when there are no observations.
func (d *Durations) Mean() time.Duration {
	if len(d.sorted) == 0 {
		return 0
	}
	var total time.Duration
	for _, v := range d.sorted {
		total += v
	}
	return total / time.Duration(len(d.sorted))
}

// Compute the pth percentile of vals, interpolating linearly between the two
// closest ranks (the spreadsheet PERCENTILE method).
//
// REQUIRES: vals is sorted.
// REQUIRES: len(vals) > 0
// REQUIRES: 0 <= p <= 100
func Duration(vals []time.Duration, p int) time.Duration {
	if p < 0 || p > 100 {
		panic(fmt.Sprintf("percentile out of range: %d", p))
	}

	n := len(vals)
	rank := (float64(p) / 100) * float64(n-1)
	kFloat, frac := math.Modf(rank)
	k := int(kFloat)

	if k >= n-1 {
		return vals[n-1]
	}
	vk := float64(vals[k])
	vk1 := float64(vals[k+1])
	return time.Duration(vk + frac*(vk1-vk))
}
