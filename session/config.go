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
	"github.com/pkg/errors"

	"github.com/bbva/treewalk/traversal"
	"github.com/bbva/treewalk/tree"
)

var ErrInvalidConfig = errors.New("invalid session config")

// DefaultMaxNodes bounds the size of every tree a session builds.
const DefaultMaxNodes = 1 << 20

type Config struct {
	// Shape of the tree walked by every strategy except inorder.
	GeneralDepth     uint64 `desc:"Depth of the general tree"`
	GeneralBranching uint64 `desc:"Children per inner node of the general tree"`

	// Shape of the tree walked by inorder.
	BinaryDepth     uint64 `desc:"Depth of the binary tree walked in order"`
	BinaryBranching uint64 `desc:"Children per inner node of the binary tree"`

	// Trees with more nodes than this are rejected before allocation.
	MaxNodes uint64 `desc:"Maximum number of nodes of each tree"`

	// Strategies to run. They always run in session order.
	Strategies []string `desc:"Strategies to run (preorder, postorder, dfs, bfs, inorder)"`

	// Print a visits table after the walks.
	Stats bool `desc:"Print visit statistics after the walks"`
}

func DefaultConfig() *Config {
	strategies := make([]string, 0)
	for _, s := range traversal.Strategies() {
		strategies = append(strategies, s.String())
	}
	return &Config{
		GeneralDepth:     2,
		GeneralBranching: 3,
		BinaryDepth:      3,
		BinaryBranching:  2,
		MaxNodes:         DefaultMaxNodes,
		Strategies:       strategies,
		Stats:            false,
	}
}

// shapeFor returns the tree shape walked by s.
func (c Config) shapeFor(s traversal.Strategy) (depth, branching uint64) {
	if s.RequiresBinaryTree() {
		return c.BinaryDepth, c.BinaryBranching
	}
	return c.GeneralDepth, c.GeneralBranching
}

// parseStrategies returns the selected strategies in session order.
func (c Config) parseStrategies() ([]traversal.Strategy, error) {
	selected := make(map[traversal.Strategy]bool)
	for _, name := range c.Strategies {
		s, err := traversal.ParseStrategy(name)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "%v", err)
		}
		selected[s] = true
	}
	if len(selected) == 0 {
		return nil, errors.Wrap(ErrInvalidConfig, "no strategy selected")
	}

	result := make([]traversal.Strategy, 0, len(selected))
	for _, s := range traversal.Strategies() {
		if selected[s] {
			result = append(result, s)
		}
	}
	return result, nil
}

func (c Config) checkSize(depth, branching uint64) error {
	size, err := tree.ExpectedSize(depth, branching)
	if err == nil && size > c.MaxNodes {
		err = errors.Errorf("%d nodes exceed the limit of %d", size, c.MaxNodes)
	}
	if err != nil {
		return errors.Wrapf(ErrInvalidConfig, "tree with depth %d and branching %d: %v", depth, branching, err)
	}
	return nil
}
