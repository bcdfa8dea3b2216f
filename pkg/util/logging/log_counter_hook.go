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
	"sync"

	"github.com/sirupsen/logrus"
)

// LogHook counts the entries written at each level.
type LogHook struct {
	mu     sync.RWMutex
	counts map[logrus.Level]int
}

// NewLogHook returns an initialized LogHook.
func NewLogHook() *LogHook {
	return &LogHook{
		counts: make(map[logrus.Level]int),
	}
}

func (h *LogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *LogHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.counts[entry.Level]++
	return nil
}

// GetCount returns how many entries were written at level.
func (h *LogHook) GetCount(level logrus.Level) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.counts[level]
}
