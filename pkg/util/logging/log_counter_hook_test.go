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
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogHookCounts(t *testing.T) {
	hook := NewLogHook()
	logger := logrus.New()
	logger.Out = io.Discard
	logger.Hooks.Add(hook)

	logger.Info("one")
	logger.Warn("two")
	logger.Warn("three")
	logger.Debug("filtered by level")

	assert.Equal(t, 1, hook.GetCount(logrus.InfoLevel))
	assert.Equal(t, 2, hook.GetCount(logrus.WarnLevel))
	assert.Equal(t, 0, hook.GetCount(logrus.DebugLevel))
	assert.Equal(t, 0, hook.GetCount(logrus.ErrorLevel))
}

func TestLogHookLevels(t *testing.T) {
	assert.Equal(t, logrus.AllLevels, NewLogHook().Levels())
}
