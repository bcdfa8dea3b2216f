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

package exec

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name           string
		command        []string
		stdin          string
		expectedCode   int
		expectedStdout string
		expectedStderr string
		expectErr      bool
	}{
		{
			name:           "success",
			command:        []string{"sh", "-c", "echo out; echo err >&2"},
			expectedStdout: "out\n",
			expectedStderr: "err\n",
		},
		{
			name:           "stdin is passed through",
			command:        []string{"cat"},
			stdin:          "leaves",
			expectedStdout: "leaves",
		},
		{
			name:         "non-zero exit",
			command:      []string{"sh", "-c", "exit 2"},
			expectedCode: 2,
			expectErr:    true,
		},
		{
			name:         "not found",
			command:      []string{"teatimer-no-such-command"},
			expectedCode: -1,
			expectErr:    true,
		},
		{
			name:         "empty",
			expectedCode: -1,
			expectErr:    true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

			code, err := RunCommand(context.Background(), test.command, bytes.NewBufferString(test.stdin), stdout, stderr)

			assert.Equal(t, test.expectedCode, code)
			assert.Equal(t, test.expectErr, err != nil)
			assert.Equal(t, test.expectedStdout, stdout.String())
			assert.Equal(t, test.expectedStderr, stderr.String())
		})
	}
}

func TestRunCommandCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, err := RunCommand(ctx, []string{"sleep", "10"}, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, -1, code)
}
