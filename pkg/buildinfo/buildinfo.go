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

// Package buildinfo holds build-time information like the teatimer version.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the current version of teatimer, set by the go linker's -X flag at build time.
	Version string

	// GitSHA is the commit being built, set by the go linker's -X flag at build time.
	GitSHA string

	// GitTreeState is "clean" or "dirty", set by the go linker's -X flag at build time.
	GitTreeState string

	goBuildInfo *debug.BuildInfo
)

// FormattedGitSHA renders the Git SHA with an indicator of the tree state.
func FormattedGitSHA() string {
	if GitTreeState != "clean" {
		return fmt.Sprintf("%s-%s", GitSHA, GitTreeState)
	}
	return GitSHA
}

// GoVersion returns the version of Go the binary was built with.
func GoVersion() string {
	if goBuildInfo == nil {
		var ok bool
		goBuildInfo, ok = debug.ReadBuildInfo()
		if !ok {
			return "cannot read Go BuildInfo"
		}
	}
	return goBuildInfo.GoVersion
}
