package experiments

import (
	"context"

	"checkers/experiments/metrics"
)

var throughputGoroutines = []int{1, 2, 4, 8}

// RunThroughput plays negamax self-play games at the deepest configured depth
// with a growing root fan-out. Both players of a match-up share one config
// so the game length stays comparable; the move records carry the search
// durations and node counts.
func RunThroughput(ctx context.Context, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	depth := cfg.Depths[0]
	for _, d := range cfg.Depths {
		depth = max(depth, d)
	}

	configs := []metrics.AgentConfig{}
	matchUps := []matchUp{}
	for i, goroutines := range throughputGoroutines {
		config := metrics.AgentConfig{
			ID:         i + 1,
			Searcher:   "negamax",
			Depth:      depth,
			Goroutines: goroutines,
			Evaluator:  cfg.Evaluator,
		}
		configs = append(configs, config)
		matchUps = append(matchUps, matchUp{agent1: config, agent2: config})
	}

	return runExperiment(ctx, "parallelization_to_throughput", cfg, configs, matchUps)
}
