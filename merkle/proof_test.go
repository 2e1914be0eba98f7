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

package merkle

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashtree/hashtree/crypto/hashing"
	"github.com/hashtree/hashtree/log"
)

func TestProveAndVerifyEveryLeaf(t *testing.T) {
	log.SetLogger("TestProveAndVerifyEveryLeaf", log.SILENT)

	for blockCount := 1; blockCount <= 9; blockCount++ {
		input := make([][]byte, blockCount)
		for i := range input {
			input[i] = []byte(fmt.Sprintf("block-%d", i))
		}
		tree := New(input, hashing.NewSha256Hasher())

		for i := 0; i < blockCount; i++ {
			proof, err := tree.Prove(i)
			require.NoError(t, err, "proving leaf %d of %d blocks", i, blockCount)

			assert.True(t, proof.Verify(input[i], tree.Root()),
				"leaf %d of %d blocks must verify against its own root", i, blockCount)
			assert.False(t, proof.Verify([]byte("someone else's block"), tree.Root()),
				"foreign data must not verify with leaf %d's proof", i)
		}
	}
}

func TestProveRejectsOutOfRangeIndexes(t *testing.T) {
	log.SetLogger("TestProveRejectsOutOfRangeIndexes", log.SILENT)

	tree := New(blocks("a", "b", "c"), hashing.NewSha256Hasher())

	for _, index := range []int{-1, 3, 42} {
		_, err := tree.Prove(index)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "index %d must be rejected", index)
	}
}

func TestPromotedLeafGetsShorterProof(t *testing.T) {
	log.SetLogger("TestPromotedLeafGetsShorterProof", log.SILENT)

	input := blocks("a", "b", "c", "d", "e")
	tree := New(input, hashing.NewSha256Hasher())

	first, err := tree.Prove(0)
	require.NoError(t, err)
	promoted, err := tree.Prove(4)
	require.NoError(t, err)

	// "e" is promoted through two partnerless levels, so only its final
	// pairing contributes a step.
	assert.Len(t, first.AuditPath(), 3)
	assert.Len(t, promoted.AuditPath(), 1)
	assert.True(t, promoted.Verify(input[4], tree.Root()))
}

func TestSingleBlockProofIsEmpty(t *testing.T) {
	log.SetLogger("TestSingleBlockProofIsEmpty", log.SILENT)

	input := blocks("only")
	tree := New(input, hashing.NewSha256Hasher())

	proof, err := tree.Prove(0)
	require.NoError(t, err)

	assert.Len(t, proof.AuditPath(), 0, "a single leaf needs no siblings")
	assert.True(t, proof.Verify(input[0], tree.Root()))
}

func TestVerifyRejectsTamperedProofs(t *testing.T) {
	log.SetLogger("TestVerifyRejectsTamperedProofs", log.SILENT)

	input := blocks("a", "b", "c", "d")
	tree := New(input, hashing.NewSha256Hasher())
	root := tree.Root()
	proof, err := tree.Prove(2)
	require.NoError(t, err)
	require.True(t, proof.Verify(input[2], root))

	t.Run("tampered data", func(t *testing.T) {
		assert.False(t, proof.Verify([]byte("x"), root))
	})

	t.Run("tampered sibling digest", func(t *testing.T) {
		path := proof.AuditPath()
		tampered := make(AuditPath, len(path))
		for i, step := range path {
			sibling := append(hashing.Digest{}, step.Sibling...)
			tampered[i] = ProofStep{Sibling: sibling, Side: step.Side}
		}
		tampered[0].Sibling[0] ^= 0x01
		assert.False(t, NewProof(tampered, hashing.NewSha256Hasher()).Verify(input[2], root))
	})

	t.Run("flipped side", func(t *testing.T) {
		path := proof.AuditPath()
		flipped := make(AuditPath, len(path))
		copy(flipped, path)
		if flipped[0].Side == Left {
			flipped[0].Side = Right
		} else {
			flipped[0].Side = Left
		}
		assert.False(t, NewProof(flipped, hashing.NewSha256Hasher()).Verify(input[2], root))
	})

	t.Run("truncated path", func(t *testing.T) {
		truncated := proof.AuditPath()[:1]
		assert.False(t, NewProof(truncated, hashing.NewSha256Hasher()).Verify(input[2], root))
	})

	t.Run("unknown side value", func(t *testing.T) {
		broken := AuditPath{{Sibling: proof.AuditPath()[0].Sibling, Side: Side(7)}}
		assert.False(t, NewProof(broken, hashing.NewSha256Hasher()).Verify(input[2], root))
	})

	t.Run("wrong root", func(t *testing.T) {
		otherRoot := New(blocks("a", "b", "x", "d"), hashing.NewSha256Hasher()).Root()
		assert.False(t, proof.Verify(input[2], otherRoot))
	})

	t.Run("absent root", func(t *testing.T) {
		assert.False(t, proof.Verify(input[2], nil), "verification against no root is unconditionally false")
	})
}

func TestVerifyHandMadeXorPaths(t *testing.T) {
	log.SetLogger("TestVerifyHandMadeXorPaths", log.SILENT)

	testCases := []struct {
		path         AuditPath
		data         []byte
		expectedRoot hashing.Digest
		verifies     bool
	}{
		{
			path:         AuditPath{},
			data:         []byte{0x1},
			expectedRoot: hashing.Digest{0x1},
			verifies:     true,
		},
		{
			path:         AuditPath{},
			data:         []byte{0x1},
			expectedRoot: hashing.Digest{0x0},
			verifies:     false,
		},
		{
			path: AuditPath{
				{Sibling: hashing.Digest{0x2}, Side: Right},
			},
			data:         []byte{0x1},
			expectedRoot: hashing.Digest{0x3},
			verifies:     true,
		},
		{
			path: AuditPath{
				{Sibling: hashing.Digest{0x2}, Side: Right},
				{Sibling: hashing.Digest{0x4}, Side: Left},
			},
			data:         []byte{0x1},
			expectedRoot: hashing.Digest{0x7},
			verifies:     true,
		},
		{
			path: AuditPath{
				{Sibling: hashing.Digest{0x2}, Side: Right},
				{Sibling: hashing.Digest{0x4}, Side: Left},
			},
			data:         []byte{0x1},
			expectedRoot: hashing.Digest{0x6},
			verifies:     false,
		},
	}

	for i, c := range testCases {
		proof := NewProof(c.path, hashing.NewXorHasher())
		assert.Equal(t, c.verifies, proof.Verify(c.data, c.expectedRoot), "unexpected result in case %d", i)
	}
}

func TestAuditPathTextRoundTrip(t *testing.T) {
	log.SetLogger("TestAuditPathTextRoundTrip", log.SILENT)

	input := blocks("a", "b", "c", "d", "e")
	tree := New(input, hashing.NewSha256Hasher())
	proof, err := tree.Prove(1)
	require.NoError(t, err)

	parsed, err := ParseAuditPath(proof.AuditPath().Serialize())
	require.NoError(t, err)

	replayed := NewProof(parsed, hashing.NewSha256Hasher())
	assert.True(t, replayed.Verify(input[1], tree.Root()),
		"a proof must still verify after a text round trip")
}

func TestParseAuditPathRejectsMalformedEntries(t *testing.T) {
	log.SetLogger("TestParseAuditPathRejectsMalformedEntries", log.SILENT)

	testCases := []struct {
		entry string
	}{
		{"aabbcc"},    // no separator
		{"x|aabbcc"},  // unknown side tag
		{"l|not-hex"}, // sibling is not hexadecimal
	}

	for _, c := range testCases {
		_, err := ParseAuditPath([]string{c.entry})
		assert.Error(t, err, "expected a parse error for %q", c.entry)
	}
}
