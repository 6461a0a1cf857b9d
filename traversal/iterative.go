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
	list "github.com/bahlo/generic-list-go"

	"github.com/bbva/treewalk/tree"
)

// DepthFirst walks the tree with an explicit LIFO stack. Children are
// pushed left to right, so among siblings the rightmost one is visited
// first: the values match PreOrder but the order differs whenever a node
// has more than one child.
func DepthFirst(root *tree.Node, visitor Visitor) {
	stack := []*tree.Node{root}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visitor.VisitValue(current.Value)
		stack = append(stack, current.Children...)
	}
}

// BreadthFirst walks the tree level by level, left to right, with an
// explicit FIFO queue.
func BreadthFirst(root *tree.Node, visitor Visitor) {
	queue := list.New[*tree.Node]()
	queue.PushBack(root)

	for queue.Len() > 0 {
		current := queue.Remove(queue.Front())

		visitor.VisitValue(current.Value)
		for _, child := range current.Children {
			queue.PushBack(child)
		}
	}
}
