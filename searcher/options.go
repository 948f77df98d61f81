package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
)

type Option func(s *settings)

// settings are shared by every search strategy.
type settings struct {
	depth      int
	goroutines int
	episodes   int // MCTS only
	cutoff     int // MCTS only
	seed       uint64
	evaluate   game.Evaluate
	metrics    metrics.Collector
	last       metrics.SearchMetric
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		depth:      meta.DefaultDepth,
		goroutines: 1,
		episodes:   meta.DefaultEpisodes,
		cutoff:     meta.MAX_TURNS,
		evaluate:   game.EvaluateMaterial,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// WithDepth sets the search depth in plies. Only NegaMax looks past one ply.
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

// WithGoroutines splits the root successors over n goroutines.
func WithGoroutines(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

// WithEpisodes sets the number of MCTS episodes per move.
func WithEpisodes(episodes int) Option {
	return func(s *settings) {
		if episodes > 0 {
			s.episodes = episodes
		}
	}
}

// WithCutoff stops MCTS rollouts after depth plies and scores the position
// with the evaluator instead.
func WithCutoff(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.cutoff = depth
		}
	}
}

// WithSeed seeds the random rollouts. Goroutine i uses seed+i.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithMetrics records timings and configuration in addition to node counts.
func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

func (s *settings) NodesExpanded() int {
	return s.metrics.Nodes()
}

func (s *settings) LastSearch() metrics.SearchMetric {
	return s.last
}
