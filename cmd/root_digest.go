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
	v "github.com/spf13/viper"

	"github.com/hashtree/hashtree/merkle"
)

func newRootDigestCommand() *cobra.Command {

	var inputFile string

	cmd := &cobra.Command{
		Use:   "root [block]...",
		Short: "Compute the root digest over the given data blocks",
		Long: `Build a hash tree over the data blocks given as arguments (or read from an
input file, one block per line, in order) and print its root digest as
lowercase hexadecimal text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := readBlocks(args, inputFile)
			if err != nil {
				return err
			}
			hasherF, err := hasherFactory(v.GetString("hashing.algorithm"))
			if err != nil {
				return err
			}

			tree := merkle.New(blocks, hasherF())
			fmt.Printf("Blocks: %d\n", tree.Len())
			if root := tree.Root(); root != nil {
				fmt.Printf("Root: %s\n", root)
			} else {
				fmt.Println("Cannot compute a root digest for empty input.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputFile, "input", "", "Read blocks from this file, one per line, instead of the arguments")

	return cmd
}
