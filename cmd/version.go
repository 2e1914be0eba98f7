/*
   Copyright 2019 Hashtree contributors

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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var releaseVersion, releaseCommit, releaseDate string

// SetReleaseInfo stores the build information injected at link time so the
// version command can print it.
func SetReleaseInfo(version, commit, date string) {
	releaseVersion = version
	releaseCommit = commit
	releaseDate = date
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hashtree build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hashtree version %s\n commit: %s\n built at: %s\n",
				releaseVersion, releaseCommit, releaseDate)
		},
	}
}
