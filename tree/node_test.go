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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeString(t *testing.T) {

	testCases := []struct {
		node           *Node
		expectedString string
	}{
		{NewLeaf(), "Node(0)"},
		{NewNode(1, NewLeaf()), "Node(1)[ Node(0) ]"},
		{
			NewNode(2, NewNode(1, NewLeaf(), NewLeaf()), NewLeaf()),
			"Node(2)[ Node(1)[ Node(0) | Node(0) ] | Node(0) ]",
		},
	}

	for i, c := range testCases {
		require.Equalf(t, c.expectedString, c.node.String(), "Unexpected string in test case %d", i)
	}
}

func TestNodeSize(t *testing.T) {
	require.Equal(t, 1, NewLeaf().Size())
	require.Equal(t, 1, NewNode(7).Size())
	require.Equal(t, 4, NewNode(2, NewNode(1, NewLeaf()), NewLeaf()).Size())
}

func TestNodeIsLeaf(t *testing.T) {
	require.True(t, NewLeaf().IsLeaf())
	require.True(t, NewNode(3).IsLeaf())
	require.False(t, NewNode(1, NewLeaf()).IsLeaf())
}
