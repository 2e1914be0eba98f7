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

// Package cmd implements the command line commands of the hashtree binary.
package cmd

import (
	"github.com/spf13/cobra"
	v "github.com/spf13/viper"

	"github.com/hashtree/hashtree/log"
)

var Root = &cobra.Command{
	Use:   "hashtree",
	Short: "Hash tree toolkit",
	Long: "Hashtree builds binary hash trees over ordered sequences of data blocks. " +
		"It computes root digests, generates inclusion proofs for single blocks and " +
		"verifies those proofs against a claimed root without the rest of the data set.",
	// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLogger("Hashtree", v.GetString("log"))
	},
}

func init() {
	f := Root.PersistentFlags()
	f.String("log", "error", "Verbosity of the logs: silent, error, info, debug")
	f.String("hasher", "sha256", "Hash function used for all digests: sha256 or blake2b")

	_ = v.BindPFlag("log", f.Lookup("log"))
	_ = v.BindPFlag("hashing.algorithm", f.Lookup("hasher"))

	Root.AddCommand(
		newRootDigestCommand(),
		newProveCommand(),
		newVerifyCommand(),
		newVersionCommand(),
	)
}
