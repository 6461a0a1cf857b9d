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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/bbva/treewalk/tree"
)

func TestParseStrategy(t *testing.T) {

	testCases := []struct {
		name             string
		expectedStrategy Strategy
		expectedErr      error
	}{
		{"preorder", PreOrderStrategy, nil},
		{"postorder", PostOrderStrategy, nil},
		{"inorder", InOrderStrategy, nil},
		{" DFS ", DepthFirstStrategy, nil},
		{"bfs", BreadthFirstStrategy, nil},
		{"levelorder", 0, ErrUnknownStrategy},
		{"", 0, ErrUnknownStrategy},
	}

	for i, c := range testCases {
		s, err := ParseStrategy(c.name)
		require.Equalf(t, c.expectedErr, errors.Cause(err), "Unexpected error in test case %d", i)
		require.Equalf(t, c.expectedStrategy, s, "Unexpected strategy in test case %d", i)
	}
}

func TestStrategyNames(t *testing.T) {

	for _, s := range Strategies() {
		parsed, err := ParseStrategy(s.String())
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}

	require.Equal(t, "Recursive DFS", PreOrderStrategy.Label())
	require.Equal(t, "Recursive Postorder DFS", PostOrderStrategy.Label())
	require.Equal(t, "Stack-based DFS", DepthFirstStrategy.Label())
	require.Equal(t, "Queue-based BFS", BreadthFirstStrategy.Label())
	require.Equal(t, "Recursive Inorder DFS for Binary Tree", InOrderStrategy.Label())

	require.True(t, InOrderStrategy.RequiresBinaryTree())
	require.False(t, BreadthFirstStrategy.RequiresBinaryTree())

	require.Equal(t, "unknown", Strategy(42).String())
	require.Equal(t, "Unknown", Strategy(42).Label())
}

func TestWalk(t *testing.T) {

	root := tree.Build(2, 3)

	visitor := NewCollectVisitor()
	require.NoError(t, Walk(BreadthFirstStrategy, root, visitor))
	require.Equal(t, "2 1 1 1 0 0 0 0 0 0 0 0 0", visitor.Result())

	err := Walk(Strategy(42), root, NewCollectVisitor())
	require.Equal(t, ErrUnknownStrategy, errors.Cause(err))
}
