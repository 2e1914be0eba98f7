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

// Package hashing implements the hashers used to build and verify hash trees.
package hashing

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Digest is the fixed-length output of a hash function. Digests are values:
// they are compared by byte equality and never mutated after creation.
type Digest []byte

// Equal tells whether two digests hold exactly the same bytes.
func (d Digest) Equal(other Digest) bool {
	return bytes.Equal(d, other)
}

// String returns the digest as lowercase hexadecimal text.
func (d Digest) String() string {
	return hex.EncodeToString(d)
}

// FromString parses a digest from its lowercase hexadecimal text form.
func FromString(s string) (Digest, error) {
	digest, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parsing digest %q: %v", s, err)
	}
	return digest, nil
}

// Hasher is the interface implemented by all the hash functions usable to
// build a tree. Do hashes the in-order concatenation of its arguments as a
// single input, so the digest of an internal node is Do(left, right) and the
// argument order is load-bearing: Do(left, right) and Do(right, left) are
// unrelated digests.
//
// A Hasher instance keeps internal hashing state and must not be shared
// between goroutines; build one per call site through a HasherFactory.
type Hasher interface {
	Do(data ...[]byte) Digest
	Len() uint16
}

// HasherFactory builds a fresh, independent Hasher.
type HasherFactory func() Hasher

type blockHasher struct {
	underlying hash.Hash
}

// NewSha256Hasher returns a Hasher backed by the SHA-256 hash function.
func NewSha256Hasher() Hasher {
	return &blockHasher{underlying: sha256.New()}
}

// NewBlake2bHasher returns a Hasher backed by the 256-bit BLAKE2b hash
// function.
func NewBlake2bHasher() Hasher {
	hasher, err := blake2b.New256(nil)
	if err != nil {
		panic(fmt.Sprintf("Error creating BLAKE2b hasher %v", err))
	}
	return &blockHasher{underlying: hasher}
}

func (s *blockHasher) Do(data ...[]byte) Digest {
	s.underlying.Reset()
	for i := 0; i < len(data); i++ {
		_, _ = s.underlying.Write(data[i])
	}
	return s.underlying.Sum(nil)[:]
}

func (s *blockHasher) Len() uint16 { return uint16(256) }

// XorHasher implements the Hasher interface with a 1-byte XOR over the
// input. Handy for hand-computable hash tree tests; never use it outside
// them.
type XorHasher struct{}

func NewXorHasher() Hasher {
	return new(XorHasher)
}

func (x XorHasher) Do(data ...[]byte) Digest {
	var result byte
	for _, elem := range data {
		var sum byte
		for _, b := range elem {
			sum = sum ^ b
		}
		result = result ^ sum
	}
	return []byte{result}
}

func (x XorHasher) Len() uint16 { return uint16(8) }
