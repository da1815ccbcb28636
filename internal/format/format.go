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

package format

import (
	"fmt"
	"time"
)

// Present the supplied duration as HH:MM:SS.mmm. Hours are not wrapped, and
// negative durations are treated as zero.
func Clock(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}

	secs := ms / 1000
	return fmt.Sprintf(
		"%02d:%02d:%02d.%03d",
		secs/3600,
		(secs/60)%60,
		secs%60,
		ms%1000)
}

// Present the supplied per-second rate of unit in a human-readable format.
func Rate(v float64, unit string) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2f G%s/s", v/1e9, unit)

	case v >= 1e6:
		return fmt.Sprintf("%.2f M%s/s", v/1e6, unit)

	case v >= 1e3:
		return fmt.Sprintf("%.2f K%s/s", v/1e3, unit)

	default:
		return fmt.Sprintf("%.2f %s/s", v, unit)
	}
}
