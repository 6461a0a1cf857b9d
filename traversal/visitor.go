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

// Package traversal walks trees built by the tree package. Every strategy
// is a plain function that hands each visited node to a Visitor and keeps
// no state between calls.
package traversal

// NotBinaryTree is the token emitted by in-order traversals in place of a
// node with more than two children.
const NotBinaryTree = "This is not a binary tree."

// Visitor is the sink receiving the nodes visited by a traversal, in
// visiting order.
type Visitor interface {
	VisitValue(value uint64)
	VisitNotBinary()
}
