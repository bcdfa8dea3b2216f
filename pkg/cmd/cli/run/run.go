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

package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/teatimer/teatimer/pkg/client"
	"github.com/teatimer/teatimer/pkg/cmd"
	"github.com/teatimer/teatimer/pkg/cmd/util/flag"
	"github.com/teatimer/teatimer/pkg/metrics"
	"github.com/teatimer/teatimer/pkg/timer"
	"github.com/teatimer/teatimer/pkg/util/exec"
	"github.com/teatimer/teatimer/pkg/util/logging"
)

func NewCommand(config client.Config) *cobra.Command {
	o := NewOptions()

	c := &cobra.Command{
		Use:   "run [flags] -- COMMAND [ARG...]",
		Short: "Run a command and report how long it took",
		Args:  cobra.MinimumNArgs(1),
		Run: func(c *cobra.Command, args []string) {
			cmd.CheckError(o.Complete(c.Flags(), args, config))
			cmd.CheckError(o.Validate())
			cmd.CheckError(o.Run(c.Context()))
		},
		Example: `  # Time a build.
  teatimer run -- make build

  # Name the task and report through the logger as JSON.
  teatimer run --name nightly-sync --log --log-format json -- ./sync.sh

  # Warn when a backup takes more than an hour and export its duration for the node exporter.
  teatimer run --warn-after 1h --metrics-textfile /var/lib/node_exporter/backup.prom -- ./backup.sh`,
	}

	// everything after the command belongs to the command
	c.Flags().SetInterspersed(false)
	o.BindFlags(c.Flags())

	return c
}

type Options struct {
	Name            string
	Log             bool
	WarnAfter       flag.Duration
	MetricsTextfile string
	LogLevelFlag    *logging.LevelFlag
	FormatFlag      *logging.FormatFlag

	command []string
	stdin   io.Reader
	out     io.Writer
	errOut  io.Writer
}

func NewOptions() *Options {
	return &Options{
		LogLevelFlag: logging.LogLevelFlag(logrus.InfoLevel),
		FormatFlag:   logging.NewFormatFlag(),
		stdin:        os.Stdin,
		out:          os.Stdout,
		errOut:       os.Stderr,
	}
}

func (o *Options) BindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.Name, "name", o.Name, "Task name used in the report. Defaults to the command's base name.")
	flags.BoolVar(&o.Log, "log", o.Log, "Report through the logger at info level instead of printing the report line.")
	flags.Var(&o.WarnAfter, "warn-after", "Log a warning when the command runs longer than this, e.g. 90s, 2h or 1d.")
	flags.StringVar(&o.MetricsTextfile, "metrics-textfile", o.MetricsTextfile, "Write Prometheus metrics for the run to this file.")
	flags.Var(o.LogLevelFlag, "log-level", fmt.Sprintf("The level at which to log. Valid values are %s.", strings.Join(o.LogLevelFlag.AllowedValues(), ", ")))
	flags.Var(o.FormatFlag, "log-format", fmt.Sprintf("The format for log output. Valid values are %s.", strings.Join(o.FormatFlag.AllowedValues(), ", ")))
}

// Complete fills in the command and any setting not given on the command
// line from config.
func (o *Options) Complete(flags *pflag.FlagSet, args []string, config client.Config) error {
	o.command = args
	if o.Name == "" && len(args) > 0 {
		o.Name = filepath.Base(args[0])
	}

	if !flags.Changed("log-level") && config.LogLevel() != "" {
		if err := o.LogLevelFlag.Set(config.LogLevel()); err != nil {
			return errors.Wrapf(err, "invalid %s in config", client.ConfigKeyLogLevel)
		}
	}
	if !flags.Changed("log-format") && config.LogFormat() != "" {
		if err := o.FormatFlag.Set(config.LogFormat()); err != nil {
			return errors.Wrapf(err, "invalid %s in config", client.ConfigKeyLogFormat)
		}
	}
	if !flags.Changed("metrics-textfile") && config.MetricsTextfile() != "" {
		o.MetricsTextfile = config.MetricsTextfile()
	}

	return nil
}

func (o *Options) Validate() error {
	if len(o.command) == 0 || o.command[0] == "" {
		return errors.New("a command to run is required")
	}
	return nil
}

// Run runs the command as a timed call. The command's error, including a
// non-zero exit, is returned unchanged.
func (o *Options) Run(ctx context.Context) error {
	logger := logging.NewLogger(o.errOut, o.LogLevelFlag.Parse(), o.FormatFlag.Parse())
	counter := logging.NewLogHook()
	logger.Hooks.Add(counter)
	log := logger.WithField("command", strings.Join(o.command, " "))

	observer := &runObserver{}
	if o.MetricsTextfile != "" {
		observer.metrics = metrics.NewTimerMetrics()
		observer.metrics.InitTask(o.Name)
	}

	opts := []timer.Option{
		timer.WithWriter(o.errOut),
		timer.WithLogger(log),
		timer.WithObserver(observer),
	}

	task := func() (int, error) {
		return exec.RunCommand(ctx, o.command, o.stdin, o.out, o.errOut)
	}

	log.Debug("Starting command")

	var (
		exitCode int
		runErr   error
	)
	if o.Log {
		exitCode, runErr = timer.LTookErr(o.Name, task, opts...)
	} else {
		exitCode, runErr = timer.TookErr(o.Name, task, opts...)
	}
	log.WithField("exitCode", exitCode).Debug("Command finished")

	if o.WarnAfter.Duration > 0 && observer.elapsed > o.WarnAfter.Duration {
		log.WithField("warnAfter", o.WarnAfter.String()).Warnf("%s ran longer than expected", o.Name)
	}

	if observer.metrics != nil {
		if err := observer.metrics.WriteToTextfile(o.MetricsTextfile); err != nil {
			log.WithError(err).Error("Error writing metrics textfile")
			logging.LogStackTrace(log, err)
		}
	}

	o.printStatus(observer.elapsed, runErr, counter.GetCount(logrus.WarnLevel)+counter.GetCount(logrus.ErrorLevel))
	return runErr
}

func (o *Options) printStatus(elapsed time.Duration, err error, problems int) {
	status := color.New(color.FgGreen, color.Bold).Sprint("succeeded")
	if err != nil {
		status = color.New(color.FgRed, color.Bold).Sprintf("failed (%v)", err)
	}

	took := timer.FormatDuration(elapsed)
	if elapsed >= time.Minute {
		took = timer.HumanDuration(elapsed)
	}

	fmt.Fprintf(o.errOut, "%s %s in %s", o.Name, status, took)
	if problems > 0 {
		fmt.Fprintf(o.errOut, ", %d warning(s) logged", problems)
	}
	fmt.Fprintln(o.errOut)
}

// runObserver keeps the final duration for the status line and forwards it
// to the metrics when enabled.
type runObserver struct {
	metrics *metrics.TimerMetrics
	elapsed time.Duration
}

func (r *runObserver) ObserveDuration(task string, d time.Duration, err error) {
	r.elapsed = d
	if r.metrics != nil {
		r.metrics.ObserveDuration(task, d, err)
	}
}
