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
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/bbva/treewalk/log"
	"github.com/bbva/treewalk/metrics"
	"github.com/bbva/treewalk/tree"
)

func TestMetricsVisitor(t *testing.T) {

	m := metrics.NewTraversal()

	collector := NewCollectVisitor()
	InOrder(node(9, node(8, leaf(1), leaf(2), leaf(3)), leaf(7)), NewMetricsVisitor(collector, m, InOrderStrategy))

	require.Equal(t, 2.0, testutil.ToFloat64(m.VisitsTotal.WithLabelValues("inorder")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.SentinelsTotal.WithLabelValues("inorder")))
	require.Equal(t, []string{NotBinaryTree, "9", "7"}, collector.Tokens())

	BreadthFirst(tree.Build(2, 3), NewMetricsVisitor(NewCollectVisitor(), m, BreadthFirstStrategy))
	require.Equal(t, 13.0, testutil.ToFloat64(m.VisitsTotal.WithLabelValues("bfs")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.SentinelsTotal.WithLabelValues("bfs")))
}

func TestLogVisitor(t *testing.T) {

	var buf bytes.Buffer
	logger := log.New(&log.LoggerOptions{
		Name:   "walk",
		Output: &buf,
		Level:  log.Trace,
	})

	collector := NewCollectVisitor()
	InOrder(node(2, leaf(0), leaf(1), leaf(3)), NewLogVisitor(collector, logger))
	PreOrder(node(1, leaf(0)), NewLogVisitor(collector, logger))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "[WARN]  walk: Skipping subtree of a node with more than two children")
	require.Contains(t, lines[1], "[TRACE] walk: Visiting node with value 1")
	require.Contains(t, lines[2], "[TRACE] walk: Visiting node with value 0")
	require.Equal(t, []string{NotBinaryTree, "1", "0"}, collector.Tokens())
}

func TestLogVisitorTraceOff(t *testing.T) {

	var buf bytes.Buffer
	logger := log.New(&log.LoggerOptions{
		Output: &buf,
		Level:  log.Debug,
	})

	collector := NewCollectVisitor()
	PreOrder(tree.Build(2, 3), NewLogVisitor(collector, logger))

	require.Equal(t, "", buf.String())
	require.Len(t, collector.Values(), 13)
}
