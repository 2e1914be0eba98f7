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

func newProveCommand() *cobra.Command {

	var inputFile string
	var index int

	cmd := &cobra.Command{
		Use:   "prove [block]...",
		Short: "Generate the inclusion proof for one leaf of the tree",
		Long: `Build a hash tree over the given data blocks and print the audit path for
the leaf at --index, one "side|hex" entry per line, ordered leaf to root.
The output can be fed back to the verify command.`,
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
			proof, err := tree.Prove(index)
			if err != nil {
				return err
			}

			fmt.Printf("Leaf: %d\n", index)
			fmt.Printf("Root: %s\n", tree.Root())
			for _, entry := range proof.AuditPath().Serialize() {
				fmt.Printf("Path: %s\n", entry)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "Zero-based position of the leaf to prove")
	cmd.Flags().StringVar(&inputFile, "input", "", "Read blocks from this file, one per line, instead of the arguments")

	return cmd
}
