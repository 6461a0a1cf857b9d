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

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {

	registry := prometheus.NewRegistry()
	m := NewTraversal()
	require.NoError(t, m.Register(registry))

	m.NodesBuiltTotal.Add(13)
	m.VisitsTotal.WithLabelValues("bfs").Add(13)
	m.RunsTotal.WithLabelValues("bfs").Inc()

	require.Equal(t, 13.0, testutil.ToFloat64(m.NodesBuiltTotal))
	require.Equal(t, 13.0, testutil.ToFloat64(m.VisitsTotal.WithLabelValues("bfs")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("bfs")))

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0)
	for _, f := range families {
		names = append(names, f.GetName())
	}
	// sentinels_total has no children yet, so it is not gathered
	require.ElementsMatch(t, []string{
		"treewalk_tree_nodes_built_total",
		"treewalk_traversal_visits_total",
		"treewalk_traversal_runs_total",
	}, names)
}

func TestRegisterTwice(t *testing.T) {

	registry := prometheus.NewRegistry()
	require.NoError(t, NewTraversal().Register(registry))
	require.Error(t, NewTraversal().Register(registry))
}
