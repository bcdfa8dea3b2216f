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

package flag

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/duration"
)

// Duration is a time.Duration flag that also accepts days, weeks, months
// (30d) and years (365d), and sums space-separated terms, e.g. "1d 2h30m".
type Duration struct {
	time.Duration
}

var unitMap = map[string]time.Duration{
	"ns": time.Nanosecond,
	"us": time.Microsecond,
	"µs": time.Microsecond, // U+00B5 micro sign
	"μs": time.Microsecond, // U+03BC greek mu
	"ms": time.Millisecond,
	"s":  time.Second,
	"m":  time.Minute,
	"h":  time.Hour,
	"d":  24 * time.Hour,
	"w":  7 * 24 * time.Hour,
	"mo": 30 * 24 * time.Hour,
	"y":  365 * 24 * time.Hour,
}

// ParseDuration parses a non-negative duration. An empty string is zero.
func ParseDuration(s string) (Duration, error) {
	var total float64

	rest := strings.TrimSpace(s)
	for rest != "" {
		number := leading(rest, func(r rune) bool { return r == '.' || (r >= '0' && r <= '9') })
		if number == "" {
			return Duration{}, errors.Errorf("expected number at %q", rest)
		}
		value, err := strconv.ParseFloat(number, 64)
		if err != nil {
			return Duration{}, errors.Wrapf(err, "invalid number %q", number)
		}
		rest = rest[len(number):]

		unit := leading(rest, func(r rune) bool { return r == 'µ' || r == 'μ' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') })
		if unit == "" {
			return Duration{}, errors.Errorf("missing unit after %q", number)
		}
		scale, ok := unitMap[strings.ToLower(unit)]
		if !ok {
			return Duration{}, errors.Errorf("unknown unit %q", unit)
		}
		rest = strings.TrimLeft(rest[len(unit):], " ")

		total += value * float64(scale)
		if total >= math.MaxInt64 {
			return Duration{}, errors.Errorf("duration %q is too large", s)
		}
	}

	return Duration{Duration: time.Duration(total)}, nil
}

func leading(s string, accept func(rune) bool) string {
	for i, r := range s {
		if !accept(r) {
			return s[:i]
		}
	}
	return s
}

func (d *Duration) String() string { return duration.ShortHumanDuration(d.Duration) }

func (d *Duration) Set(s string) error {
	parsed, err := ParseDuration(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Duration) Type() string { return "duration" }
