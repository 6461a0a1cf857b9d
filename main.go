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

// This binary builds synthetic trees and prints the values visited by
// every traversal strategy.
package main

import (
	"os"

	"github.com/bbva/treewalk/build"
	"github.com/bbva/treewalk/cmd"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	build.SetReleaseInfo(version, commit, date)
	if err := cmd.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
