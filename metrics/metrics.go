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

// Package metrics defines the prometheus collectors fed by tree
// construction and traversals.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "treewalk"

	treeSubsystem      = "tree"
	traversalSubsystem = "traversal"

	// StrategyLabel is the label name carrying the traversal strategy.
	StrategyLabel = "strategy"
)

// Traversal groups the collectors of a traversal session. Each session
// owns its own instance so counts never leak between runs.
type Traversal struct {
	NodesBuiltTotal prometheus.Counter
	VisitsTotal     *prometheus.CounterVec
	SentinelsTotal  *prometheus.CounterVec
	RunsTotal       *prometheus.CounterVec
}

func NewTraversal() *Traversal {
	return &Traversal{
		NodesBuiltTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: treeSubsystem,
				Name:      "nodes_built_total",
				Help:      "Number of nodes allocated by the tree builder.",
			},
		),
		VisitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: traversalSubsystem,
				Name:      "visits_total",
				Help:      "Number of nodes visited by traversal strategy.",
			},
			[]string{StrategyLabel},
		),
		SentinelsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: traversalSubsystem,
				Name:      "sentinels_total",
				Help:      "Number of non-binary nodes signalled by traversal strategy.",
			},
			[]string{StrategyLabel},
		),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: traversalSubsystem,
				Name:      "runs_total",
				Help:      "Number of completed traversals by strategy.",
			},
			[]string{StrategyLabel},
		),
	}
}

// Collectors returns every collector of m.
func (m *Traversal) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.NodesBuiltTotal,
		m.VisitsTotal,
		m.SentinelsTotal,
		m.RunsTotal,
	}
}

// Register registers every collector of m into r.
func (m *Traversal) Register(r prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}
