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

// Package cmd implements the treewalk command line.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRoot returns the treewalk command tree. Every call returns an
// independent tree with its own configuration state.
func NewRoot() *cobra.Command {
	ctx := &cmdContext{v: viper.New()}

	root := &cobra.Command{
		Use:   "treewalk",
		Short: "Builds synthetic trees and walks them",
		Long: `treewalk builds trees of a given depth and branching factor and visits every
node with pre-order, post-order, in-order, stack-based depth-first and
queue-based breadth-first traversals, printing the visited values.`,
		// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.load(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&ctx.logLevel, "log", "l", "error", "Choose between log levels: silent, error, warn, info, debug, trace")
	f.StringVarP(&ctx.configFile, "config", "c", "", "Path to a YAML config file (default $HOME/.treewalk.yaml when present)")

	root.AddCommand(
		newRunCommand(ctx),
		newWalkCommand(ctx),
		newVersionCommand(),
	)

	return root
}
