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

// Package merkle implements a binary hash tree over an ordered sequence of
// data blocks, with inclusion proofs that can be verified from the proof and
// a claimed root digest alone.
package merkle

import (
	"errors"
	"fmt"

	"github.com/hashtree/hashtree/crypto/hashing"
)

// ErrIndexOutOfRange is returned by Prove when the requested leaf index does
// not address any of the blocks the tree was built from.
var ErrIndexOutOfRange = errors.New("leaf index out of range")

// Tree is an immutable hash tree. It holds every level of digests, from the
// leaves (level 0, in input order) up to the single root digest. Any change
// to the underlying data set requires building a new tree.
type Tree struct {
	levels []level
	hasher hashing.Hasher
}

type level []hashing.Digest

// New builds a tree over the given ordered sequence of data blocks. Each
// block is hashed into a leaf, then levels are built bottom-up by hashing
// strict left-to-right pairs. When a level holds an odd number of digests,
// the trailing one is promoted unchanged to the next level: it is neither
// duplicated nor re-hashed, it just waits for a partner further up. The
// promotion convention changes both the root value and the proof path
// lengths, so it must never be swapped for the hash-with-itself one.
//
// New never fails: an empty sequence yields a tree without a root and a
// single block yields a tree whose root is that block's leaf digest.
func New(blocks [][]byte, hasher hashing.Hasher) *Tree {
	tree := &Tree{hasher: hasher}
	buildTotal.Inc()

	if len(blocks) == 0 {
		return tree
	}

	leaves := make(level, len(blocks))
	for i, block := range blocks {
		leaves[i] = hasher.Do(block)
	}
	tree.levels = append(tree.levels, leaves)

	for current := leaves; len(current) > 1; {
		next := make(level, 0, (len(current)+1)/2)
		for i := 0; i+1 < len(current); i += 2 {
			next = append(next, hasher.Do(current[i], current[i+1]))
		}
		if len(current)%2 == 1 {
			next = append(next, current[len(current)-1])
		}
		tree.levels = append(tree.levels, next)
		current = next
	}

	return tree
}

// Root returns the root digest, or nil when the tree was built from an empty
// sequence and therefore summarizes nothing.
func (t *Tree) Root() hashing.Digest {
	if len(t.levels) == 0 {
		return nil
	}
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// Len returns the number of data blocks the tree was built from.
func (t *Tree) Len() int {
	if len(t.levels) == 0 {
		return 0
	}
	return len(t.levels[0])
}

// Height returns the number of pairing levels above the leaves.
func (t *Tree) Height() int {
	if len(t.levels) == 0 {
		return 0
	}
	return len(t.levels) - 1
}

// Prove returns the inclusion proof for the block at the given leaf index.
// The proof carries one sibling digest per level where the path node had a
// partner; levels where it was promoted contribute nothing, so leaves that
// ride a promotion get proofs shorter than the tree height.
func (t *Tree) Prove(index int) (*Proof, error) {
	if index < 0 || index >= t.Len() {
		return nil, fmt.Errorf("proving leaf %d of %d: %w", index, t.Len(), ErrIndexOutOfRange)
	}
	proveTotal.Inc()

	path := make(AuditPath, 0, t.Height())
	i := index
	for _, current := range t.levels[:len(t.levels)-1] {
		sibling := i ^ 1
		if sibling < len(current) {
			step := ProofStep{Sibling: current[sibling], Side: Right}
			if sibling < i {
				step.Side = Left
			}
			path = append(path, step)
		}
		i = i / 2
	}

	return NewProof(path, t.hasher), nil
}
