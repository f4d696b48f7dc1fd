package searcher

import (
	"sync/atomic"
)

type SearchMetrics struct {
	Nodes   int64 // States visited, root included
	Leaves  int64 // Terminal states scored
	Cutoffs int64 // Non-terminal states scored by heuristic
	Prunes  int64 // Plies that stopped early on a window cutoff
}

type MetricsCollector interface {
	AddNode()
	AddLeaf()
	AddCutoff()
	AddPrune()
	Complete() SearchMetrics
}

type metricsCollector struct {
	nodes   atomic.Int64
	leaves  atomic.Int64
	cutoffs atomic.Int64
	prunes  atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) AddPrune() {
	m.prunes.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		Nodes:   m.nodes.Load(),
		Leaves:  m.leaves.Load(),
		Cutoffs: m.cutoffs.Load(),
		Prunes:  m.prunes.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) AddLeaf()                {}
func (m *noMetricsCollector) AddCutoff()              {}
func (m *noMetricsCollector) AddPrune()               {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
