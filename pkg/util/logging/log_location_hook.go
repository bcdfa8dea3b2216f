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
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	logSourceField  = "logSource"
	logrusPackage   = "github.com/sirupsen/logrus"
	timerPackage    = "github.com/teatimer/teatimer/pkg/timer."
	teatimerPackage = "github.com/teatimer/teatimer/"
)

// LogLocationHook attaches the file and line of the log call to each entry.
// Frames inside logrus and inside the timer package are skipped, so a report
// emitted by Timer.Log points at the code that asked for it.
type LogLocationHook struct{}

func (h *LogLocationHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *LogLocationHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 64)

	// skip runtime.Callers and this method
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()

		if !isReportingFrame(frame) {
			entry.Data[logSourceField] = fmt.Sprintf("%s:%d", trimModulePrefix(frame.File), frame.Line)
			return nil
		}
		if !more {
			return nil
		}
	}
}

func isReportingFrame(frame runtime.Frame) bool {
	if strings.Contains(frame.File, logrusPackage) {
		return true
	}
	return strings.HasPrefix(frame.Function, timerPackage) && !strings.HasSuffix(frame.File, "_test.go")
}

func trimModulePrefix(file string) string {
	if index := strings.Index(file, teatimerPackage); index != -1 {
		return file[index+len(teatimerPackage):]
	}
	return file
}
