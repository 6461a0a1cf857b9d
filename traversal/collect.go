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
	"strconv"
	"strings"
)

// CollectVisitor records every visit as a token: the decimal value of the
// node, or NotBinaryTree for signalled nodes.
type CollectVisitor struct {
	tokens    []string
	values    []uint64
	sentinels int
}

func NewCollectVisitor() *CollectVisitor {
	return &CollectVisitor{
		tokens: make([]string, 0),
		values: make([]uint64, 0),
	}
}

func (v *CollectVisitor) VisitValue(value uint64) {
	v.tokens = append(v.tokens, strconv.FormatUint(value, 10))
	v.values = append(v.values, value)
}

func (v *CollectVisitor) VisitNotBinary() {
	v.tokens = append(v.tokens, NotBinaryTree)
	v.sentinels++
}

// Tokens returns a copy of the visits in order, sentinels included.
func (v *CollectVisitor) Tokens() []string {
	return append([]string(nil), v.tokens...)
}

// Values returns a copy of the visited values in order, sentinels excluded.
func (v *CollectVisitor) Values() []uint64 {
	return append([]uint64(nil), v.values...)
}

func (v *CollectVisitor) Sentinels() int {
	return v.sentinels
}

// Result returns the tokens separated by a single space.
func (v *CollectVisitor) Result() string {
	return strings.Join(v.tokens, " ")
}
