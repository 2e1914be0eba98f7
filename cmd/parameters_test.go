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
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasherFactory(t *testing.T) {
	testCases := []struct {
		name        string
		expectError bool
	}{
		{"sha256", false},
		{"blake2b", false},
		{"md5", true},
		{"", true},
	}

	for _, c := range testCases {
		hasherF, err := hasherFactory(c.name)
		if c.expectError {
			assert.Error(t, err, "hasher %q must be rejected", c.name)
			continue
		}
		require.NoError(t, err, "hasher %q must be accepted", c.name)
		assert.NotNil(t, hasherF)
	}
}

func TestReadBlocksFromArgs(t *testing.T) {
	blocks, err := readBlocks([]string{"a", "b", "c"}, "")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, blocks)
}

func TestReadBlocksFromFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "hashtree")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	inputFile := filepath.Join(dir, "blocks.txt")
	require.NoError(t, ioutil.WriteFile(inputFile, []byte("first\nsecond\nthird\n"), 0644))

	blocks, err := readBlocks(nil, inputFile)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("first"), []byte("second"), []byte("third")}, blocks)
}

func TestReadBlocksMissingFile(t *testing.T) {
	_, err := readBlocks(nil, "/nonexistent/blocks.txt")
	assert.Error(t, err)
}
