/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

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

package tree

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

var ErrTreeTooLarge = errors.New("tree too large")

// Build creates a tree of the given depth where every inner node has
// exactly branching children. The whole tree is allocated eagerly, so
// callers must keep branching^depth within memory bounds; see BuildBounded.
//
// With branching 0 the result is a single node holding depth as value.
func Build(depth, branching uint64) *Node {
	if depth == 0 {
		return NewLeaf()
	}

	children := make([]*Node, 0, branching)
	for i := uint64(0); i < branching; i++ {
		children = append(children, Build(depth-1, branching))
	}

	return NewNode(depth, children...)
}

// BuildBounded builds the same tree as Build, but refuses to allocate
// trees holding more than maxNodes nodes.
func BuildBounded(depth, branching, maxNodes uint64) (*Node, error) {
	size, err := ExpectedSize(depth, branching)
	if err != nil {
		return nil, err
	}
	if size > maxNodes {
		return nil, errors.Wrapf(ErrTreeTooLarge, "depth %d and branching %d need %d nodes, limit is %d", depth, branching, size, maxNodes)
	}
	return Build(depth, branching), nil
}

// ExpectedSize returns the number of nodes Build(depth, branching) allocates.
func ExpectedSize(depth, branching uint64) (uint64, error) {
	switch branching {
	case 0:
		return 1, nil
	case 1:
		if depth == math.MaxUint64 {
			return 0, errors.Wrapf(ErrTreeTooLarge, "depth %d overflows", depth)
		}
		return depth + 1, nil
	}

	// 1 + b + b^2 + ... + b^depth, accumulated level by level
	var total, level uint64 = 1, 1
	for i := uint64(0); i < depth; i++ {
		hi, lo := bits.Mul64(level, branching)
		if hi != 0 {
			return 0, errors.Wrapf(ErrTreeTooLarge, "depth %d and branching %d overflow", depth, branching)
		}
		level = lo
		sum, carry := bits.Add64(total, level, 0)
		if carry != 0 {
			return 0, errors.Wrapf(ErrTreeTooLarge, "depth %d and branching %d overflow", depth, branching)
		}
		total = sum
	}
	return total, nil
}
