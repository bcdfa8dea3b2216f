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

package version

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/teatimer/teatimer/pkg/buildinfo"
)

func NewCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Print the teatimer version",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, args []string) {
			printVersion(c.OutOrStdout())
		},
	}

	return c
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "Version: %s\n", buildinfo.Version)
	fmt.Fprintf(w, "Git commit: %s\n", buildinfo.FormattedGitSHA())
	fmt.Fprintf(w, "Go version: %s\n", buildinfo.GoVersion())
}
