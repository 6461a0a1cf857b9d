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
	"strings"

	"github.com/pkg/errors"

	"github.com/bbva/treewalk/tree"
)

var ErrUnknownStrategy = errors.New("unknown traversal strategy")

// Strategy identifies one of the traversal functions of this package.
type Strategy uint8

const (
	PreOrderStrategy Strategy = iota
	PostOrderStrategy
	DepthFirstStrategy
	BreadthFirstStrategy
	InOrderStrategy
)

var strategies = []struct {
	name  string
	label string
	walk  func(*tree.Node, Visitor)
}{
	PreOrderStrategy:     {"preorder", "Recursive DFS", PreOrder},
	PostOrderStrategy:    {"postorder", "Recursive Postorder DFS", PostOrder},
	DepthFirstStrategy:   {"dfs", "Stack-based DFS", DepthFirst},
	BreadthFirstStrategy: {"bfs", "Queue-based BFS", BreadthFirst},
	InOrderStrategy:      {"inorder", "Recursive Inorder DFS for Binary Tree", InOrder},
}

// Strategies returns every strategy in session order.
func Strategies() []Strategy {
	return []Strategy{
		PreOrderStrategy,
		PostOrderStrategy,
		DepthFirstStrategy,
		BreadthFirstStrategy,
		InOrderStrategy,
	}
}

// ParseStrategy returns the strategy with the given short name.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

// String returns the short name of s, as accepted by ParseStrategy.
func (s Strategy) String() string {
	if int(s) >= len(strategies) {
		return "unknown"
	}
	return strategies[s].name
}

// Label returns the human readable title of s.
func (s Strategy) Label() string {
	if int(s) >= len(strategies) {
		return "Unknown"
	}
	return strategies[s].label
}

// RequiresBinaryTree reports whether s is only defined on binary trees.
func (s Strategy) RequiresBinaryTree() bool {
	return s == InOrderStrategy
}

// Walk traverses root with strategy s.
func Walk(s Strategy, root *tree.Node, visitor Visitor) error {
	if int(s) >= len(strategies) {
		return errors.Wrapf(ErrUnknownStrategy, "%d", s)
	}
	strategies[s].walk(root, visitor)
	return nil
}
