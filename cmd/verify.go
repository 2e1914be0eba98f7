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
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	v "github.com/spf13/viper"

	"github.com/hashtree/hashtree/crypto/hashing"
	"github.com/hashtree/hashtree/merkle"
)

func newVerifyCommand() *cobra.Command {

	var rootHex string
	var pathEntries []string

	cmd := &cobra.Command{
		Use:   "verify <block>",
		Short: "Verify that a data block is included behind a claimed root digest",
		Long: `Replay an audit path against a claimed root digest to check that the given
block was part of the sequence that produced it. Only the block, the path
entries and the root are needed, never the tree itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootHex == "" {
				return errors.New(errMissingRootHash)
			}
			root, err := hashing.FromString(rootHex)
			if err != nil {
				return err
			}
			path, err := merkle.ParseAuditPath(pathEntries)
			if err != nil {
				return err
			}
			hasherF, err := hasherFactory(v.GetString("hashing.algorithm"))
			if err != nil {
				return err
			}

			proof := merkle.NewProof(path, hasherF())
			if !proof.Verify([]byte(args[0]), root) {
				return fmt.Errorf("block is NOT included under root %s", root)
			}
			fmt.Println("Verified!")
			return nil
		},
	}

	cmd.Flags().StringVar(&rootHex, "root", "", "Claimed root digest in lowercase hex")
	cmd.Flags().StringSliceVar(&pathEntries, "path", nil, `Audit path entries ("l|<hex>" or "r|<hex>"), ordered leaf to root`)

	return cmd
}
