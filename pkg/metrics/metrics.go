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

package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// TimerMetrics exports the durations of finished timers as Prometheus
// metrics. It satisfies timer.Observer.
type TimerMetrics struct {
	metrics map[string]prometheus.Collector
}

const (
	metricNamespace = "teatimer"

	taskDurationSeconds = "task_duration_seconds"
	taskTotal           = "task_total"

	// Labels
	taskLabel   = "task"
	resultLabel = "result"

	resultSuccess = "success"
	resultFailure = "failure"
)

// NewTimerMetrics returns new TimerMetrics.
func NewTimerMetrics() *TimerMetrics {
	return &TimerMetrics{
		metrics: map[string]prometheus.Collector{
			taskDurationSeconds: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: metricNamespace,
					Name:      taskDurationSeconds,
					Help:      "Time taken by timed tasks, in seconds",
					Buckets: []float64{
						toSeconds(1 * time.Millisecond),
						toSeconds(10 * time.Millisecond),
						toSeconds(100 * time.Millisecond),
						toSeconds(500 * time.Millisecond),
						toSeconds(1 * time.Second),
						toSeconds(5 * time.Second),
						toSeconds(30 * time.Second),
						toSeconds(1 * time.Minute),
						toSeconds(5 * time.Minute),
						toSeconds(30 * time.Minute),
						toSeconds(1 * time.Hour),
					},
				},
				[]string{taskLabel},
			),
			taskTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: metricNamespace,
					Name:      taskTotal,
					Help:      "Total number of timed tasks, by result",
				},
				[]string{taskLabel, resultLabel},
			),
		},
	}
}

// RegisterAllMetrics registers all metrics with reg.
func (m *TimerMetrics) RegisterAllMetrics(reg prometheus.Registerer) error {
	for name, pm := range m.metrics {
		if err := reg.Register(pm); err != nil {
			return errors.Wrapf(err, "error registering metric %s", name)
		}
	}
	return nil
}

// InitTask initializes the counters of a task to zero so both results show
// up before the first observation.
func (m *TimerMetrics) InitTask(task string) {
	if c, ok := m.metrics[taskTotal].(*prometheus.CounterVec); ok {
		c.WithLabelValues(task, resultSuccess).Add(0)
		c.WithLabelValues(task, resultFailure).Add(0)
	}
}

// ObserveDuration records how long task took and whether it failed.
func (m *TimerMetrics) ObserveDuration(task string, d time.Duration, err error) {
	if h, ok := m.metrics[taskDurationSeconds].(*prometheus.HistogramVec); ok {
		h.WithLabelValues(task).Observe(toSeconds(d))
	}

	result := resultSuccess
	if err != nil {
		result = resultFailure
	}
	if c, ok := m.metrics[taskTotal].(*prometheus.CounterVec); ok {
		c.WithLabelValues(task, result).Inc()
	}
}

// WriteToTextfile writes the metrics in the text exposition format used by
// the node exporter's textfile collector.
func (m *TimerMetrics) WriteToTextfile(path string) error {
	reg := prometheus.NewRegistry()
	if err := m.RegisterAllMetrics(reg); err != nil {
		return err
	}
	return errors.Wrapf(prometheus.WriteToTextfile(path, reg), "error writing metrics to %s", path)
}

// toSeconds translates a time.Duration value into a float64
// representing the number of seconds in that duration.
func toSeconds(d time.Duration) float64 {
	return d.Seconds()
}
