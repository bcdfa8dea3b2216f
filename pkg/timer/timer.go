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

// Package timer measures how long a named task takes and reports it on
// stdout, through a logrus logger, or to an Observer.
package timer

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"

	"github.com/teatimer/teatimer/pkg/util/logging"
)

// ErrStopped is returned by every Timer method called after Stop.
var ErrStopped = errors.New("timer already stopped")

var _ logging.LogSetter = (*Timer)(nil)

// Observer receives the final duration of every stopped timer.
type Observer interface {
	ObserveDuration(task string, d time.Duration, err error)
}

type fieldLoggerHolder struct {
	log logrus.FieldLogger
}

var defaultLog atomic.Pointer[fieldLoggerHolder]

// SetDefaultLogger sets the logger used by Log on timers that were not given
// one of their own. Passing nil turns Log back into a no-op for those timers.
func SetDefaultLogger(log logrus.FieldLogger) {
	defaultLog.Store(&fieldLoggerHolder{log: usableLogger(log)})
}

// Timer pairs a task name with the monotonic instant the task started.
// A Timer is owned by its caller and is not safe for concurrent use.
type Timer struct {
	name     string
	start    time.Time
	clock    clock.PassiveClock
	out      io.Writer
	log      logrus.FieldLogger
	observer Observer
	stopped  bool
}

// Option configures a Timer at construction.
type Option func(*Timer)

// WithClock sets the clock start and elapsed times are read from.
func WithClock(c clock.PassiveClock) Option {
	return func(t *Timer) {
		t.clock = c
	}
}

// WithWriter sets where Elapsed and Stop write their reports. Defaults to
// os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(t *Timer) {
		t.out = w
	}
}

// WithLogger sets the logger Log reports through. A nil logger, typed or
// not, leaves the timer without one.
func WithLogger(log logrus.FieldLogger) Option {
	return func(t *Timer) {
		t.log = usableLogger(log)
	}
}

// WithObserver registers an Observer notified when the timer stops.
func WithObserver(o Observer) Option {
	return func(t *Timer) {
		t.observer = o
	}
}

// New starts a timer for the task called name.
func New(name string, opts ...Option) *Timer {
	t := &Timer{
		name:  name,
		clock: clock.RealClock{},
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.start = t.clock.Now()
	return t
}

// Start starts an unnamed timer.
func Start(opts ...Option) *Timer {
	return New("", opts...)
}

// Name returns the task name.
func (t *Timer) Name() string {
	return t.name
}

// SetLog sets the logger Log reports through.
func (t *Timer) SetLog(log logrus.FieldLogger) {
	t.log = usableLogger(log)
}

// Duration returns the time since the timer started or was last restarted.
func (t *Timer) Duration() (time.Duration, error) {
	if err := t.checkActive(); err != nil {
		return 0, err
	}
	return t.clock.Since(t.start), nil
}

// DurationString returns Duration formatted by FormatDuration.
func (t *Timer) DurationString() (string, error) {
	d, err := t.Duration()
	if err != nil {
		return "", err
	}
	return FormatDuration(d), nil
}

// Elapsed writes "<name>: <duration>" and returns the duration. The timer
// keeps running.
func (t *Timer) Elapsed() (time.Duration, error) {
	d, err := t.Duration()
	if err != nil {
		return 0, err
	}
	fmt.Fprintln(t.out, elapsedLine(t.name, d))
	return d, nil
}

// Restart renames the timer and starts measuring again from now.
func (t *Timer) Restart(name string) error {
	if err := t.checkActive(); err != nil {
		return err
	}
	t.name = name
	t.start = t.clock.Now()
	return nil
}

// Log is Elapsed routed through the timer's logger at info level instead of
// the writer. Without a logger it reports nothing.
func (t *Timer) Log() (time.Duration, error) {
	d, err := t.Duration()
	if err != nil {
		return 0, err
	}
	if log := t.logger(); log != nil {
		t.entry(log, d).Info(elapsedLine(t.name, d))
	}
	return d, nil
}

// Stop writes "<name> took <duration>", notifies the observer and ends the
// timer. Any later call on the timer returns ErrStopped.
func (t *Timer) Stop() (time.Duration, error) {
	if err := t.checkActive(); err != nil {
		return 0, err
	}
	return t.finish(false, nil), nil
}

// String implements fmt.Stringer.
func (t *Timer) String() string {
	if t.stopped {
		return fmt.Sprintf("%s stopped", t.name)
	}
	return fmt.Sprintf("%s elapsed %s", t.name, FormatDuration(t.clock.Since(t.start)))
}

// finish reports the final duration, through the logger when logged is set,
// and marks the timer stopped.
func (t *Timer) finish(logged bool, taskErr error) time.Duration {
	d := t.clock.Since(t.start)
	line := tookLine(t.name, d)

	if logged {
		if log := t.logger(); log != nil {
			entry := t.entry(log, d)
			if taskErr != nil {
				entry = entry.WithError(taskErr)
			}
			entry.Info(line)
		}
	} else {
		fmt.Fprintln(t.out, line)
	}

	if t.observer != nil {
		t.observer.ObserveDuration(t.name, d, taskErr)
	}
	t.stopped = true
	return d
}

func (t *Timer) checkActive() error {
	if t.stopped {
		return errors.Wrapf(ErrStopped, "task %q", t.name)
	}
	return nil
}

func (t *Timer) logger() logrus.FieldLogger {
	if t.log != nil {
		return t.log
	}
	if h := defaultLog.Load(); h != nil {
		return h.log
	}
	return nil
}

// usableLogger maps a nil pointer wrapped in the interface, such as a nil
// *logrus.Logger, to a plain nil.
func usableLogger(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		return nil
	}
	if v := reflect.ValueOf(log); v.Kind() == reflect.Ptr && v.IsNil() {
		return nil
	}
	return log
}

func (t *Timer) entry(log logrus.FieldLogger, d time.Duration) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"task":    t.name,
		"elapsed": FormatDuration(d),
	})
}

func elapsedLine(name string, d time.Duration) string {
	if name == "" {
		return FormatDuration(d)
	}
	return fmt.Sprintf("%s: %s", name, FormatDuration(d))
}

func tookLine(name string, d time.Duration) string {
	if name == "" {
		return fmt.Sprintf("took %s", FormatDuration(d))
	}
	return fmt.Sprintf("%s took %s", name, FormatDuration(d))
}
