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

package logging

import (
	"errors"
	"testing"

	pkgerrs "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyKettle() error {
	return pkgerrs.New("kettle empty")
}

func TestErrorLocationHookFire(t *testing.T) {
	tests := []struct {
		name             string
		fields           logrus.Fields
		expectedErr      string
		expectedFunction string
		expectedFields   []string
	}{
		{
			name:           "no error field",
			fields:         logrus.Fields{"task": "brew"},
			expectedFields: []string{"task"},
		},
		{
			name:           "error without stack trace",
			fields:         logrus.Fields{logrus.ErrorKey: errors.New("kettle empty")},
			expectedFields: []string{logrus.ErrorKey},
		},
		{
			name:           "non-error logged in error field",
			fields:         logrus.Fields{logrus.ErrorKey: "kettle empty"},
			expectedErr:    "object logged as error does not satisfy error interface; type=string",
			expectedFields: []string{logrus.ErrorKey},
		},
		{
			name:             "pkg/errors error",
			fields:           logrus.Fields{"task": "brew", logrus.ErrorKey: emptyKettle()},
			expectedFunction: "github.com/teatimer/teatimer/pkg/util/logging.emptyKettle",
			expectedFields:   []string{"task", logrus.ErrorKey, errorFileField, errorFunctionField},
		},
		{
			name:             "wrapped error reports where it was created",
			fields:           logrus.Fields{logrus.ErrorKey: pkgerrs.Wrap(emptyKettle(), "brew")},
			expectedFunction: "github.com/teatimer/teatimer/pkg/util/logging.emptyKettle",
			expectedFields:   []string{logrus.ErrorKey, errorFileField, errorFunctionField},
		},
		{
			name: "location already set",
			fields: logrus.Fields{
				logrus.ErrorKey:    emptyKettle(),
				errorFileField:     "kettle.go:12",
				errorFunctionField: "boil",
			},
			expectedFunction: "boil",
			expectedFields:   []string{logrus.ErrorKey, errorFileField, errorFunctionField},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			entry := &logrus.Entry{Data: test.fields}

			err := (&ErrorLocationHook{}).Fire(entry)
			if test.expectedErr != "" {
				assert.EqualError(t, err, test.expectedErr)
			} else {
				require.NoError(t, err)
			}

			keys := make([]string, 0, len(entry.Data))
			for key := range entry.Data {
				keys = append(keys, key)
			}
			assert.ElementsMatch(t, test.expectedFields, keys)

			if test.expectedFunction != "" {
				assert.Equal(t, test.expectedFunction, entry.Data[errorFunctionField])
				assert.NotEmpty(t, entry.Data[errorFileField])
			}
		})
	}
}

func TestGetInnermostTrace(t *testing.T) {
	plain := errors.New("kettle empty")
	traced := emptyKettle()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name: "nil error",
		},
		{
			name: "error without stack trace",
			err:  plain,
		},
		{
			name:     "pkg/errors error",
			err:      traced,
			expected: traced,
		},
		{
			name:     "stack added to a plain error",
			err:      pkgerrs.WithStack(plain),
			expected: pkgerrs.WithStack(plain),
		},
		{
			name:     "wrapped pkg/errors error",
			err:      pkgerrs.Wrap(pkgerrs.Wrap(traced, "boil"), "brew"),
			expected: traced,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := getInnermostTrace(test.err)

			if test.expected == nil {
				assert.Nil(t, res)
				return
			}
			require.NotNil(t, res)
			assert.Equal(t, test.expected.Error(), res.Error())
		})
	}
}
