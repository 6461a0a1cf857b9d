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

// Package session runs a set of traversal strategies over synthetic trees
// and writes every visiting sequence as a labelled section.
package session

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bbva/treewalk/log"
	"github.com/bbva/treewalk/metrics"
	"github.com/bbva/treewalk/traversal"
	"github.com/bbva/treewalk/tree"
)

type Session struct {
	config     Config
	strategies []traversal.Strategy

	log      log.Logger
	metrics  *metrics.Traversal
	registry *prometheus.Registry
}

// New validates config and returns a session ready to run. Every session
// registers its collectors in a registry of its own.
func New(config Config, logger log.Logger) (*Session, error) {
	strategies, err := config.parseStrategies()
	if err != nil {
		return nil, err
	}

	for _, s := range strategies {
		depth, branching := config.shapeFor(s)
		if err := config.checkSize(depth, branching); err != nil {
			return nil, err
		}
	}

	m := metrics.NewTraversal()
	registry := prometheus.NewRegistry()
	if err := m.Register(registry); err != nil {
		return nil, err
	}

	return &Session{
		config:     config,
		strategies: strategies,
		log:        logger.Named("session"),
		metrics:    m,
		registry:   registry,
	}, nil
}

// Registry returns the registry holding the session collectors.
func (s *Session) Registry() *prometheus.Registry {
	return s.registry
}

// Run walks every selected strategy and writes one section per strategy
// to w:
//
//	[#]
//	<label>:
//	<space separated values>
//
// The general tree and the binary tree are each built once, on first use.
func (s *Session) Run(w io.Writer) error {
	trees := make(map[[2]uint64]*tree.Node)

	for _, strategy := range s.strategies {
		depth, branching := s.config.shapeFor(strategy)

		root, ok := trees[[2]uint64{depth, branching}]
		if !ok {
			var err error
			s.log.Debugf("Building tree with depth %d and branching %d", depth, branching)
			root, err = tree.BuildBounded(depth, branching, s.config.MaxNodes)
			if err != nil {
				return err
			}
			s.metrics.NodesBuiltTotal.Add(float64(root.Size()))
			trees[[2]uint64{depth, branching}] = root
		}

		collector := traversal.NewCollectVisitor()
		visitor := traversal.NewLogVisitor(
			traversal.NewMetricsVisitor(collector, s.metrics, strategy),
			s.log.Named(strategy.String()),
		)
		if err := traversal.Walk(strategy, root, visitor); err != nil {
			return err
		}
		s.metrics.RunsTotal.WithLabelValues(strategy.String()).Inc()
		s.log.Infof("%s visited %d nodes", strategy.Label(), len(collector.Values()))

		if _, err := fmt.Fprintf(w, "[#]\n%s:\n%s\n", strategy.Label(), collector.Result()); err != nil {
			return err
		}
	}

	if s.config.Stats {
		return s.writeStats(w)
	}
	return nil
}
