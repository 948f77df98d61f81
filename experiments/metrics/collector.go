package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Searcher   string
	Goroutines int
	Depth      int
	Duration   time.Duration
	Nodes      int
	Score      int // score of the chosen move
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" when the turn cap was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers the statistics of one search. Implementations are safe
// for concurrent use.
type Collector interface {
	Start(searcher string, goroutines, depth int)
	AddNode()
	Nodes() int
	Complete() SearchMetric
}

type collector struct {
	searcher   string
	goroutines int
	depth      int
	startTime  time.Time
	nodes      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(searcher string, goroutines, depth int) {
	m.startTime = time.Now()
	m.searcher = searcher
	m.goroutines = goroutines
	m.depth = depth
	m.nodes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) Nodes() int {
	return int(m.nodes.Load())
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Searcher:   m.searcher,
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
	}
}

// dummyCollector only counts nodes; timing and configuration are dropped.
type dummyCollector struct {
	nodes atomic.Int64
}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(searcher string, goroutines, depth int) { m.nodes.Store(0) }
func (m *dummyCollector) AddNode()                                     { m.nodes.Add(1) }
func (m *dummyCollector) Nodes() int                                   { return int(m.nodes.Load()) }
func (m *dummyCollector) Complete() SearchMetric                       { return SearchMetric{Nodes: m.Nodes()} }
