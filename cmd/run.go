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

	"github.com/octago/sflags/gen/gpflag"
	"github.com/spf13/cobra"

	"github.com/bbva/treewalk/session"
)

func newRunCommand(ctx *cmdContext) *cobra.Command {

	conf := session.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Walks the general and binary trees with every strategy",
		Long: `Builds the general tree and walks it pre-order, post-order, with an explicit
stack and with an explicit queue. Then builds the binary tree and walks it
in order. Each walk prints a section with its label and visited values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.New(*conf, ctx.logger)
			if err != nil {
				return err
			}
			return s.Run(cmd.OutOrStdout())
		},
	}

	err := gpflag.ParseTo(conf, cmd.Flags())
	if err != nil {
		panic(fmt.Sprintf("Unable to parse run config: %v", err))
	}

	return cmd
}
