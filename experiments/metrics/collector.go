package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth        int
	MaxDecrement int
	MinDecrement int
	Goroutines   int
	Duration     time.Duration
	Candidates   int // Root moves considered
	Nodes        int
	Leaves       int // Static evaluations at the depth cutoff
	Stalled      int // Nodes whose side to move had no legal move
	Captured     bool
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" when the move limit ended the game
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth, goroutines int)
	SetCandidates(n int)
	SetCaptured(value bool)
	AddNode()
	AddLeaf()
	AddStalled()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	startTime  time.Time
	candidates int
	captured   atomic.Bool
	nodes      atomic.Int64
	leaves     atomic.Int64
	stalled    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.candidates = 0
	m.captured.Store(false)
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.stalled.Store(0)
}

func (m *collector) SetCandidates(n int) {
	m.candidates = n
}

func (m *collector) SetCaptured(value bool) {
	m.captured.Store(value)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddStalled() {
	m.stalled.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Candidates: m.candidates,
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Stalled:    int(m.stalled.Load()),
		Captured:   m.captured.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int) {}
func (m *dummyCollector) SetCandidates(n int)         {}
func (m *dummyCollector) SetCaptured(value bool)      {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddLeaf()                    {}
func (m *dummyCollector) AddStalled()                 {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
