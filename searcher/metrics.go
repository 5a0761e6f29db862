package searcher

import "sync/atomic"

// SearchMetrics summarizes one move search.
type SearchMetrics struct {
	Depth   int
	Nodes   int64 // positions visited, root included
	Leaves  int64 // terminal or horizon positions
	Cutoffs int64 // sibling scans abandoned by pruning
}

type MetricsCollector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetrics
}

type metricsCollector struct {
	depth   int
	nodes   atomic.Int64
	leaves  atomic.Int64
	cutoffs atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(depth int) {
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
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

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		Depth:   m.depth,
		Nodes:   m.nodes.Load(),
		Leaves:  m.leaves.Load(),
		Cutoffs: m.cutoffs.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(depth int)         {}
func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) AddLeaf()                {}
func (m *noMetricsCollector) AddCutoff()              {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
