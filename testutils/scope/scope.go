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

// Package scope groups test steps into named scenarios sharing setup and
// teardown functions.
package scope

import (
	"testing"
)

type step struct {
	title string
	run   func(t *testing.T)
}

// Let registers a step of the scenario being prepared.
type Let func(string, func(t *testing.T))

// Scenario prepares and runs a scenario. Steps registered with Let inside
// prepare run in order as subtests; once a step fails the remaining ones
// are reported as skipped.
type Scenario func(string, func())

// TestF is the signature of the before and after functions.
type TestF func(t *testing.T)

// Scope returns the scenario and let functions bound to t. before and after
// run around every scenario.
//
//	scenario, let := scope.Scope(t, before, after)
//
//	scenario("A leaf tree", func() {
//		root := tree.Build(0, 3)
//		let("is visited once by preorder", func(t *testing.T) {
//			...
//		})
//	})
func Scope(t *testing.T, before, after TestF) (Scenario, Let) {
	var steps []step

	let := func(title string, run func(t *testing.T)) {
		steps = append(steps, step{title, run})
	}

	scenario := func(title string, prepare func()) {
		steps = make([]step, 0)
		prepare()

		before(t)
		defer after(t)

		t.Run(title, func(t *testing.T) {
			for i, s := range steps {
				if !t.Run(s.title, s.run) {
					for _, skipped := range steps[i+1:] {
						t.Logf("%s → skipped", skipped.title)
					}
					return
				}
			}
		})
	}

	return scenario, let
}

// Noop is a before or after function doing nothing.
func Noop(t *testing.T) {}
