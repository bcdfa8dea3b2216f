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
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultHooks returns the hooks every teatimer logger carries.
func DefaultHooks() []logrus.Hook {
	return []logrus.Hook{
		&LogLocationHook{},
		&ErrorLocationHook{},
	}
}

// DefaultLogger returns a logger writing to stdout at the given level and
// format, with the default hooks installed.
func DefaultLogger(level logrus.Level, format Format) *logrus.Logger {
	return NewLogger(os.Stdout, level, format)
}

// NewLogger is DefaultLogger writing to out.
func NewLogger(out io.Writer, level logrus.Level, format Format) *logrus.Logger {
	logger := logrus.New()

	if format == FormatJSON {
		logger.Formatter = new(logrus.JSONFormatter)
		// JSON consumers such as Elasticsearch expand dotted keys into
		// objects, so "error" cannot hold both the message and the
		// error.file / error.function fields added by ErrorLocationHook.
		logrus.ErrorKey = "error.message"
	} else {
		logrus.ErrorKey = "error"
	}

	logger.Out = out
	logger.Level = level

	for _, hook := range DefaultHooks() {
		logger.Hooks.Add(hook)
	}

	return logger
}
