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

package timer

import "github.com/pkg/errors"

var errPanicked = errors.New("task panicked")

// Took runs fn, writes how long it took and returns its result unchanged.
// An empty name is allowed.
func Took[R any](name string, fn func() R, opts ...Option) R {
	res, _ := timed(New(name, opts...), false, func() (R, error) {
		return fn(), nil
	})
	return res
}

// TookErr is Took for work that can fail. fn's error is returned as is, and
// the time spent up to the failure is still reported.
func TookErr[R any](name string, fn func() (R, error), opts ...Option) (R, error) {
	return timed(New(name, opts...), false, fn)
}

// LTook is Took reporting through the timer's logger instead of the writer.
func LTook[R any](name string, fn func() R, opts ...Option) R {
	res, _ := timed(New(name, opts...), true, func() (R, error) {
		return fn(), nil
	})
	return res
}

// LTookErr is TookErr reporting through the timer's logger. A failure is
// attached to the log entry as its error.
func LTookErr[R any](name string, fn func() (R, error), opts ...Option) (R, error) {
	return timed(New(name, opts...), true, fn)
}

// timed reports from a deferred call so a panicking fn still gets its
// elapsed time reported; the panic itself is not recovered.
func timed[R any](t *Timer, logged bool, fn func() (R, error)) (res R, err error) {
	completed := false
	defer func() {
		taskErr := err
		if !completed {
			taskErr = errPanicked
		}
		t.finish(logged, taskErr)
	}()

	res, err = fn()
	completed = true
	return res, err
}
