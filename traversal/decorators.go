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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bbva/treewalk/log"
	"github.com/bbva/treewalk/metrics"
)

// MetricsVisitor decorates a Visitor, counting visits and sentinels of a
// strategy before forwarding them.
type MetricsVisitor struct {
	visits    prometheus.Counter
	sentinels prometheus.Counter
	Visitor
}

func NewMetricsVisitor(decorated Visitor, m *metrics.Traversal, s Strategy) *MetricsVisitor {
	return &MetricsVisitor{
		visits:    m.VisitsTotal.WithLabelValues(s.String()),
		sentinels: m.SentinelsTotal.WithLabelValues(s.String()),
		Visitor:   decorated,
	}
}

func (v *MetricsVisitor) VisitValue(value uint64) {
	v.visits.Inc()
	v.Visitor.VisitValue(value)
}

func (v *MetricsVisitor) VisitNotBinary() {
	v.sentinels.Inc()
	v.Visitor.VisitNotBinary()
}

// LogVisitor decorates a Visitor, tracing every visit.
type LogVisitor struct {
	log log.Logger
	Visitor
}

func NewLogVisitor(decorated Visitor, logger log.Logger) *LogVisitor {
	return &LogVisitor{
		log:     logger,
		Visitor: decorated,
	}
}

func (v *LogVisitor) VisitValue(value uint64) {
	if v.log.IsEnabled(log.Trace) {
		v.log.Tracef("Visiting node with value %d", value)
	}
	v.Visitor.VisitValue(value)
}

func (v *LogVisitor) VisitNotBinary() {
	v.log.Warn("Skipping subtree of a node with more than two children")
	v.Visitor.VisitNotBinary()
}
