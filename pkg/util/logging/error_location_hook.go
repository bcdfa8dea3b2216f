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
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	errorFileField     = "error.file"
	errorFunctionField = "error.function"
)

// ErrorLocationHook records where a logged error was created, when the error
// carries a github.com/pkg/errors stack trace.
type ErrorLocationHook struct{}

func (h *ErrorLocationHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *ErrorLocationHook) Fire(entry *logrus.Entry) error {
	errObj, exists := entry.Data[logrus.ErrorKey]
	if !exists {
		return nil
	}
	if _, exists := entry.Data[errorFileField]; exists {
		return nil
	}
	if _, exists := entry.Data[errorFunctionField]; exists {
		return nil
	}

	err, ok := errObj.(error)
	if !ok {
		return errors.Errorf("object logged as error does not satisfy error interface; type=%T", errObj)
	}

	tracer := getInnermostTrace(err)
	if tracer == nil || len(tracer.StackTrace()) == 0 {
		return nil
	}

	// %+v on a frame prints "function\n\tfile:line"
	frame := fmt.Sprintf("%+v", tracer.StackTrace()[0])
	function, fileAndLine, found := strings.Cut(frame, "\n\t")
	if !found {
		return nil
	}

	entry.Data[errorFileField] = trimModulePrefix(fileAndLine)
	entry.Data[errorFunctionField] = function
	return nil
}

type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

type causer interface {
	Cause() error
}

// getInnermostTrace follows the Cause chain of err and returns the deepest
// error that has a stack trace, or nil if none does.
func getInnermostTrace(err error) stackTracer {
	var tracer stackTracer

	for err != nil {
		if t, ok := err.(stackTracer); ok {
			tracer = t
		}

		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}

	return tracer
}
