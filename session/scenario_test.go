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

package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbva/treewalk/testutils/scope"
	"github.com/bbva/treewalk/traversal"
	"github.com/bbva/treewalk/tree"
)

func TestScenarios(t *testing.T) {

	var out bytes.Buffer
	before := func(t *testing.T) { out.Reset() }
	scenario, let := scope.Scope(t, before, scope.Noop)

	run := func(t *testing.T, config *Config) []string {
		s, err := New(*config, silentLogger())
		require.NoError(t, err)
		require.NoError(t, s.Run(&out))
		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		values := make([]string, 0)
		for i := 2; i < len(lines); i += 3 {
			values = append(values, lines[i])
		}
		return values
	}

	scenario("A tree of depth 0 is a single leaf", func() {
		config := DefaultConfig()
		config.GeneralDepth, config.BinaryDepth = 0, 0
		config.GeneralBranching, config.BinaryBranching = 7, 7

		let("every strategy visits it once with value 0", func(t *testing.T) {
			require.Equal(t, []string{"0", "0", "0", "0", "0"}, run(t, config))
		})
	})

	scenario("The default general tree holds 13 nodes", func() {
		config := DefaultConfig()
		config.Strategies = []string{"preorder", "postorder", "dfs", "bfs"}

		let("the tree size matches 1 + 3 + 9", func(t *testing.T) {
			require.Equal(t, 13, tree.Build(config.GeneralDepth, config.GeneralBranching).Size())
		})
		let("every non in-order strategy emits 13 values", func(t *testing.T) {
			for _, values := range run(t, config) {
				require.Len(t, strings.Fields(values), 13)
			}
		})
	})

	scenario("A 3-children node under in-order", func() {
		root := tree.NewNode(4,
			tree.NewNode(3, tree.NewLeaf(), tree.NewLeaf(), tree.NewLeaf()),
			tree.NewNode(2, tree.NewLeaf()),
		)
		collector := traversal.NewCollectVisitor()

		let("emits the sentinel in place of its value", func(t *testing.T) {
			traversal.InOrder(root, collector)
			require.Equal(t, traversal.NotBinaryTree, collector.Tokens()[0])
		})
		let("skips its subtree but visits its siblings", func(t *testing.T) {
			require.Equal(t, []uint64{4, 0, 2}, collector.Values())
			require.Equal(t, 1, collector.Sentinels())
		})
	})
}
