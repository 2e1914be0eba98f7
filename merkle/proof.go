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
	"fmt"
	"strings"

	"github.com/hashtree/hashtree/crypto/hashing"
	"github.com/hashtree/hashtree/log"
)

// Side tells on which side of the running digest a sibling sits. When the
// sibling is on the Right, the running digest is the left operand of the
// pair hash, and vice versa.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "l"
	case Right:
		return "r"
	default:
		return "unknown"
	}
}

// ProofStep is one level of an audit path: the digest of the sibling at that
// level and the side it occupies.
type ProofStep struct {
	Sibling hashing.Digest
	Side    Side
}

// AuditPath is the ordered, leaf-to-root sequence of proof steps.
type AuditPath []ProofStep

// Serialize returns the audit path in its text form, one "side|hex" entry
// per step. The result round-trips through ParseAuditPath.
func (p AuditPath) Serialize() []string {
	serialized := make([]string, len(p))
	for i, step := range p {
		serialized[i] = fmt.Sprintf("%s|%s", step.Side, step.Sibling)
	}
	return serialized
}

// ParseAuditPath rebuilds an audit path from its text form. Entries must
// look like "l|<hex>" or "r|<hex>".
func ParseAuditPath(serialized []string) (AuditPath, error) {
	path := make(AuditPath, 0, len(serialized))
	for _, entry := range serialized {
		tokens := strings.SplitN(entry, "|", 2)
		if len(tokens) != 2 {
			return nil, fmt.Errorf("malformed audit path entry %q: missing side separator", entry)
		}
		var side Side
		switch tokens[0] {
		case "l":
			side = Left
		case "r":
			side = Right
		default:
			return nil, fmt.Errorf("malformed audit path entry %q: unknown side %q", entry, tokens[0])
		}
		sibling, err := hashing.FromString(tokens[1])
		if err != nil {
			return nil, fmt.Errorf("malformed audit path entry %q: %v", entry, err)
		}
		path = append(path, ProofStep{Sibling: sibling, Side: side})
	}
	return path, nil
}

// Proof is an inclusion proof: the audit path from one leaf to the root,
// plus the hasher needed to replay it. It is a plain value, producible and
// verifiable without any live Tree.
type Proof struct {
	path   AuditPath
	hasher hashing.Hasher
}

// NewProof builds a proof from an audit path received out of band. The
// hasher must be of the same kind the tree was built with.
func NewProof(path AuditPath, hasher hashing.Hasher) *Proof {
	return &Proof{
		path:   path,
		hasher: hasher,
	}
}

// AuditPath returns the sibling path the proof carries.
func (p *Proof) AuditPath() AuditPath {
	return p.path
}

// Verify recomputes a candidate root from the leaf data and the audit path,
// and compares it against the claimed root digest. It needs nothing beyond
// the proof itself, so its cost is proportional to the path length no matter
// how large the original data set was.
//
// Verify never fails with an error: a structurally broken proof, a claimed
// root of the wrong size or the absent root of an empty tree all simply
// yield false.
func (p *Proof) Verify(data []byte, expectedRoot hashing.Digest) bool {
	verifyTotal.Inc()
	log.Debugf("Verifying inclusion proof with %d steps against root %s", len(p.path), expectedRoot)

	if len(expectedRoot) == 0 {
		verifyFailedTotal.Inc()
		return false
	}

	current := p.hasher.Do(data)
	for _, step := range p.path {
		switch step.Side {
		case Right:
			current = p.hasher.Do(current, step.Sibling)
		case Left:
			current = p.hasher.Do(step.Sibling, current)
		default:
			verifyFailedTotal.Inc()
			return false
		}
	}

	if !current.Equal(expectedRoot) {
		verifyFailedTotal.Inc()
		return false
	}
	return true
}
