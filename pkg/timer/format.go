/*
Copyright the Teatimer contributors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package timer

import (
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/duration"
)

// FormatDuration renders d in the coarsest unit that keeps the number at or
// above one: seconds with one decimal, then whole milliseconds, microseconds
// and nanoseconds. Zero and negative durations render as "0ms".
func FormatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "0ms"
	case d >= time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%dms", d/time.Millisecond)
	case d >= time.Microsecond:
		return fmt.Sprintf("%dµs", d/time.Microsecond)
	default:
		return fmt.Sprintf("%dns", int64(d))
	}
}

// HumanDuration renders d the way kubectl prints ages, keeping two units
// where they matter, e.g. "119s", "3m50s", "3h".
func HumanDuration(d time.Duration) string {
	return duration.HumanDuration(d)
}
