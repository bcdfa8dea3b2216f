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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "whitespace only",
			input: "   ",
		},
		{
			name:     "milliseconds",
			input:    "250ms",
			expected: 250 * time.Millisecond,
		},
		{
			name:     "micro sign",
			input:    "15µs",
			expected: 15 * time.Microsecond,
		},
		{
			name:     "seconds only",
			input:    "30s",
			expected: 30 * time.Second,
		},
		{
			name:     "days only",
			input:    "3d",
			expected: 3 * 24 * time.Hour,
		},
		{
			name:     "weeks only",
			input:    "1w",
			expected: 7 * 24 * time.Hour,
		},
		{
			name:     "combined units",
			input:    "2d5h10m30s",
			expected: 2*24*time.Hour + 5*time.Hour + 10*time.Minute + 30*time.Second,
		},
		{
			name:     "combined with spaces",
			input:    "1d 12h 30m",
			expected: 36*time.Hour + 30*time.Minute,
		},
		{
			name:     "mixed case units",
			input:    "2H 3M 4S",
			expected: 2*time.Hour + 3*time.Minute + 4*time.Second,
		},
		{
			name:     "fraction",
			input:    "1.5m",
			expected: 90 * time.Second,
		},
		{
			name:    "invalid characters",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "number without unit",
			input:   "123",
			wantErr: true,
		},
		{
			name:     "months",
			input:    "5mo",
			expected: 5 * 30 * 24 * time.Hour,
		},
		{
			name:     "years and months",
			input:    "1y 2mo",
			expected: 365*24*time.Hour + 60*24*time.Hour,
		},
		{
			name:    "unknown unit",
			input:   "5fortnights",
			wantErr: true,
		},
		{
			name:    "overflows time.Duration",
			input:   "1000000w",
			wantErr: true,
		},
		{
			name:    "overflow across terms",
			input:   "200y 200y",
			wantErr: true,
		},
		{
			name:    "negative number",
			input:   "-5s",
			wantErr: true,
		},
		{
			name:    "multiple decimal points",
			input:   "5.5.5s",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseDuration(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.Duration)
		})
	}
}

func TestDurationFlag(t *testing.T) {
	d := &Duration{}
	assert.Equal(t, "duration", d.Type())

	require.NoError(t, d.Set("2m"))
	assert.Equal(t, 2*time.Minute, d.Duration)
	assert.Equal(t, "2m", d.String())

	assert.Error(t, d.Set("soon"))
	assert.Equal(t, 2*time.Minute, d.Duration)
}

func TestDurationFlagStringRoundTrip(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{duration: 45 * time.Second, expected: "45s"},
		{duration: 200 * 24 * time.Hour, expected: "200d"},
		{duration: 3 * 365 * 24 * time.Hour, expected: "3y"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			d := &Duration{Duration: tc.duration}
			assert.Equal(t, tc.expected, d.String())

			parsed := &Duration{}
			require.NoError(t, parsed.Set(d.String()))
			assert.Equal(t, tc.duration, parsed.Duration)
		})
	}
}
