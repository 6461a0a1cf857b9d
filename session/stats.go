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

package session

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	dto "github.com/prometheus/client_model/go"

	"github.com/bbva/treewalk/metrics"
)

const (
	visitsMetric    = "treewalk_traversal_visits_total"
	sentinelsMetric = "treewalk_traversal_sentinels_total"
)

// writeStats renders the visits and sentinels gathered from the session
// registry, one row per strategy.
func (s *Session) writeStats(w io.Writer) error {
	families, err := s.registry.Gather()
	if err != nil {
		return err
	}
	visits := counterValues(families, visitsMetric)
	sentinels := counterValues(families, sentinelsMetric)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Strategy", "Tree", "Visits", "Sentinels"})
	for _, strategy := range s.strategies {
		depth, branching := s.config.shapeFor(strategy)
		name := strategy.String()
		table.Append([]string{
			name,
			fmt.Sprintf("%dx%d", depth, branching),
			strconv.FormatFloat(visits[name], 'f', -1, 64),
			strconv.FormatFloat(sentinels[name], 'f', -1, 64),
		})
	}
	table.Render()
	return nil
}

// counterValues maps each strategy label to the value of the named counter.
func counterValues(families []*dto.MetricFamily, name string) map[string]float64 {
	values := make(map[string]float64)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == metrics.StrategyLabel {
					values[l.GetValue()] = m.GetCounter().GetValue()
				}
			}
		}
	}
	return values
}
