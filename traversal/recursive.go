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

package traversal

import (
	"github.com/bbva/treewalk/tree"
)

// The recursive strategies below use the goroutine stack, one frame per
// tree level. Go grows goroutine stacks on demand up to the runtime limit
// (debug.SetMaxStack, 1 GB by default on 64-bit), so trees deeper than
// that limit allows abort the process with a stack overflow. Use
// DepthFirst or BreadthFirst for arbitrarily deep trees.

// PreOrder visits n before its children, children left to right.
func PreOrder(n *tree.Node, visitor Visitor) {
	visitor.VisitValue(n.Value)
	for _, child := range n.Children {
		PreOrder(child, visitor)
	}
}

// PostOrder visits the children of n left to right, then n.
func PostOrder(n *tree.Node, visitor Visitor) {
	for _, child := range n.Children {
		PostOrder(child, visitor)
	}
	visitor.VisitValue(n.Value)
}

// InOrder visits the left subtree, then n, then the right subtree. A lone
// child is walked as the left subtree.
//
// Nodes with more than two children are not binary: InOrder signals them
// with VisitNotBinary in place of their value and skips their whole
// subtree, then carries on with the rest of the tree.
func InOrder(n *tree.Node, visitor Visitor) {
	switch len(n.Children) {
	case 0:
		visitor.VisitValue(n.Value)
	case 1:
		InOrder(n.Children[0], visitor)
		visitor.VisitValue(n.Value)
	case 2:
		InOrder(n.Children[0], visitor)
		visitor.VisitValue(n.Value)
		InOrder(n.Children[1], visitor)
	default:
		visitor.VisitNotBinary()
	}
}
