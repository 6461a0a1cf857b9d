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

// Package tree builds the synthetic trees walked by the traversal package.
package tree

import (
	"fmt"
	"strings"
)

// A Node holds its value and the ordered list of children it owns.
// Value is the depth remaining when the node was created, so leaves
// always hold 0 and the root holds the tree depth.
type Node struct {
	Value    uint64
	Children []*Node
}

func NewLeaf() *Node {
	return &Node{Value: 0}
}

func NewNode(value uint64, children ...*Node) *Node {
	return &Node{
		Value:    value,
		Children: children,
	}
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	size := 0
	pending := []*Node{n}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		size++
		pending = append(pending, current.Children...)
	}
	return size
}

func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("Node(%d)", n.Value)
	}
	children := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, c.String())
	}
	return fmt.Sprintf("Node(%d)[ %s ]", n.Value, strings.Join(children, " | "))
}
