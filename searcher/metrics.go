package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm string
	Depth     Depth
	Duration  time.Duration
	Nodes     int // Expanded decision and chance nodes
	Cutoffs   int // Alpha-beta prunes
	Score     float64
}

type Collector interface {
	Start(algorithm string, depth Depth)
	AddNode()
	AddCutoff()
	Complete(score float64) SearchMetric
}

type collector struct {
	algorithm string
	depth     Depth
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, depth Depth) {
	m.algorithm = algorithm
	m.depth = depth
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(score float64) SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		Score:     score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth Depth) {}
func (m *dummyCollector) AddNode()                            {}
func (m *dummyCollector) AddCutoff()                          {}
func (m *dummyCollector) Complete(score float64) SearchMetric { return SearchMetric{Score: score} }
