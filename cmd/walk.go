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

package cmd

import (
	"fmt"
	"strings"

	"github.com/octago/sflags/gen/gpflag"
	"github.com/spf13/cobra"

	"github.com/bbva/treewalk/session"
	"github.com/bbva/treewalk/traversal"
)

type WalkConfig struct {
	Depth     uint64 `desc:"Depth of the tree"`
	Branching uint64 `desc:"Children per inner node"`
	MaxNodes  uint64 `desc:"Maximum number of nodes of the tree"`
	Stats     bool   `desc:"Print visit statistics after the walk"`
}

func WalkDefaultConfig() *WalkConfig {
	return &WalkConfig{
		Depth:     2,
		Branching: 3,
		MaxNodes:  session.DefaultMaxNodes,
	}
}

func newWalkCommand(ctx *cmdContext) *cobra.Command {

	conf := WalkDefaultConfig()

	names := make([]string, 0)
	for _, s := range traversal.Strategies() {
		names = append(names, s.String())
	}

	cmd := &cobra.Command{
		Use:       fmt.Sprintf("walk {%s}", strings.Join(names, "|")),
		Short:     "Walks a single tree with one strategy",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.New(session.Config{
				GeneralDepth:     conf.Depth,
				GeneralBranching: conf.Branching,
				BinaryDepth:      conf.Depth,
				BinaryBranching:  conf.Branching,
				MaxNodes:         conf.MaxNodes,
				Strategies:       args,
				Stats:            conf.Stats,
			}, ctx.logger)
			if err != nil {
				return err
			}
			return s.Run(cmd.OutOrStdout())
		},
	}

	err := gpflag.ParseTo(conf, cmd.Flags())
	if err != nil {
		panic(fmt.Sprintf("Unable to parse walk config: %v", err))
	}

	return cmd
}
