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
	"bufio"
	"fmt"
	"os"

	"github.com/hashtree/hashtree/crypto/hashing"
)

const (
	errUnknownHasher   = "unknown hash function"
	errReadingInput    = "cannot read input file"
	errMissingRootHash = "a claimed root digest is required"
)

// hasherFactory function maps the configured hash function name to its
// constructor.
func hasherFactory(name string) (hashing.HasherFactory, error) {
	switch name {
	case "sha256":
		return hashing.NewSha256Hasher, nil
	case "blake2b":
		return hashing.NewBlake2bHasher, nil
	default:
		return nil, fmt.Errorf("%s %q: use sha256 or blake2b", errUnknownHasher, name)
	}
}

// readBlocks function assembles the ordered sequence of data blocks either
// from the command arguments or, when a file is given, from its lines.
func readBlocks(args []string, inputFile string) ([][]byte, error) {
	if inputFile == "" {
		blocks := make([][]byte, len(args))
		for i, arg := range args {
			blocks[i] = []byte(arg)
		}
		return blocks, nil
	}

	file, err := os.Open(inputFile)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %v", errReadingInput, inputFile, err)
	}
	defer file.Close()

	var blocks [][]byte
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		blocks = append(blocks, []byte(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s %s: %v", errReadingInput, inputFile, err)
	}
	return blocks, nil
}
