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

package completion

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/teatimer/teatimer/pkg/cmd"
)

func NewCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate completion script",
		Long: `To load completions:

Bash:

$ source <(teatimer completion bash)

# To load completions for each session, execute once:
$ teatimer completion bash > /etc/bash_completion.d/teatimer

Zsh:

# To load completions for each session, execute once:
$ teatimer completion zsh > "${fpath[1]}/_teatimer"

Fish:

$ teatimer completion fish | source
`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		Run: func(c *cobra.Command, args []string) {
			cmd.CheckError(writeCompletion(c.Root(), args[0], c.OutOrStdout()))
		},
	}

	return c
}

func writeCompletion(root *cobra.Command, shell string, out io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletion(out)
	case "zsh":
		// cobra's zsh script needs an explicit compdef to work with source
		if _, err := fmt.Fprintf(out, "#compdef %[1]s\ncompdef _%[1]s %[1]s\n", root.Name()); err != nil {
			return errors.WithStack(err)
		}
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	default:
		return errors.Errorf("invalid shell %q, specify bash, zsh, or fish", shell)
	}
}
