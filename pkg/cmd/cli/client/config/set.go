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

package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/teatimer/teatimer/pkg/client"
	"github.com/teatimer/teatimer/pkg/cmd"
)

func NewSetCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "set KEY=VALUE [KEY=VALUE]...",
		Short: "Set client configuration file values. An empty VALUE removes the key.",
		Long:  fmt.Sprintf("Set client configuration file values. Valid keys are %s.", strings.Join(client.Keys(), ", ")),
		Args:  cobra.MinimumNArgs(1),
		Run: func(c *cobra.Command, args []string) {
			fileName := client.ConfigFileName()

			config, err := client.ReadConfigFile(fileName)
			cmd.CheckError(err)

			cmd.CheckError(applySettings(config, args, c.ErrOrStderr()))
			cmd.CheckError(client.SaveConfigTo(fileName, config))
		},
	}

	return c
}

// applySettings applies KEY=VALUE pairs to config. Malformed pairs are
// skipped with a warning; unknown keys are an error.
func applySettings(config client.Config, args []string, errOut io.Writer) error {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			fmt.Fprintf(errOut, "WARNING: invalid KEY=VALUE: %q\n", arg)
			continue
		}
		if !client.IsConfigKey(key) {
			return errors.Errorf("unknown config key %q, valid keys are %s", key, strings.Join(client.Keys(), ", "))
		}

		if value == "" {
			delete(config, key)
		} else {
			config[key] = value
		}
	}
	return nil
}
