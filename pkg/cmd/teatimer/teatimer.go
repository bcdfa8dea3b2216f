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

package teatimer

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teatimer/teatimer/pkg/client"
	"github.com/teatimer/teatimer/pkg/cmd/cli/client/config"
	"github.com/teatimer/teatimer/pkg/cmd/cli/completion"
	"github.com/teatimer/teatimer/pkg/cmd/cli/run"
	"github.com/teatimer/teatimer/pkg/cmd/cli/version"
)

func NewCommand(name string) *cobra.Command {
	clientConfig, err := client.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: Error reading config file: %v\n", err)
	}

	c := &cobra.Command{
		Use:   name,
		Short: "Time how long tasks take.",
		Long: `teatimer runs a command, measures how long it takes and reports the elapsed
time on stderr or through its logger. Settings not given as flags are read from
$HOME/.config/teatimer/config.yaml and TEATIMER_* environment variables.`,
		SilenceUsage: true,
	}

	c.AddCommand(
		run.NewCommand(clientConfig),
		version.NewCommand(),
		config.NewCommand(),
		completion.NewCommand(),
	)

	return c
}
