package experiments

import (
	"context"
	"fmt"
	"path/filepath"

	"checkers/agent"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type matchUp struct {
	agent1 metrics.AgentConfig
	agent2 metrics.AgentConfig
}

// Run plays every configured depth against the greedy baseline and writes the
// records under cfg.OutputDir. It returns the directory holding the records.
func Run(ctx context.Context, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	baseline := metrics.AgentConfig{ID: 0, Searcher: "greedy", Depth: 1, Goroutines: 1, Evaluator: cfg.Evaluator}
	configs := []metrics.AgentConfig{baseline}
	matchUps := []matchUp{}
	for i, depth := range cfg.Depths {
		config := metrics.AgentConfig{
			ID:         i + 1,
			Searcher:   "negamax",
			Depth:      depth,
			Goroutines: cfg.Goroutines,
			Evaluator:  cfg.Evaluator,
		}
		configs = append(configs, config)
		matchUps = append(matchUps, matchUp{agent1: baseline, agent2: config})
	}

	return runExperiment(ctx, "depth_to_strength", cfg, configs, matchUps)
}

type gameJob struct {
	id    int
	black metrics.AgentConfig
	red   metrics.AgentConfig
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveRecord
}

func runExperiment(ctx context.Context, name string, cfg Config, configs []metrics.AgentConfig, matchUps []matchUp) (string, error) {
	log.Info().Msgf("starting %s experiment...", name)

	// Colors alternate so both agents of a match-up start equally often
	jobs := []gameJob{}
	for _, m := range matchUps {
		for i := 0; i < cfg.Games; i++ {
			job := gameJob{id: len(jobs) + 1, black: m.agent1, red: m.agent2}
			if i%2 == 1 {
				job.black, job.red = job.red, job.black
			}
			jobs = append(jobs, job)
		}
	}

	results := make([]gameResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runGame(job, cfg.Seed)
			if err != nil {
				return fmt.Errorf("game %d: %w", job.id, err)
			}
			results[i] = res
			log.Info().Msgf("completed game %d of %d with winner: %q", job.id, len(jobs), res.record.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	log.Info().Msgf("completed %s experiment", name)

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, res := range results {
		gameRecords = append(gameRecords, res.record)
		moveRecords = append(moveRecords, res.moves...)
	}

	writer, err := metrics.NewWriter(filepath.Join(cfg.OutputDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays one game between the agents of job.
func runGame(job gameJob, seed uint64) (gameResult, error) {
	black, err := newAgent(job.black, seed+uint64(job.id))
	if err != nil {
		return gameResult{}, err
	}
	red, err := newAgent(job.red, seed+uint64(job.id))
	if err != nil {
		return gameResult{}, err
	}

	e := engine.NewLocalEngine([2]agent.Agent{black, red})
	_, _, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return gameResult{}, err
	}

	res := gameResult{
		record: metrics.GameRecord{
			ID:         job.id,
			Agent1:     job.black.ID,
			Agent2:     job.red.ID,
			GameMetric: gameMetric,
		},
	}
	for _, mm := range moveMetrics {
		res.moves = append(res.moves, metrics.MoveRecord{Game: job.id, MoveMetric: mm})
	}
	return res, nil
}

func newAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	if config.Searcher == "random" {
		return agent.NewRandomAgent(config.Seed + seed), nil
	}

	evaluate, ok := game.Evaluators[config.Evaluator]
	if !ok {
		return nil, fmt.Errorf("agent %d: unknown evaluator %q", config.ID, config.Evaluator)
	}
	s, err := searcher.New(config.Searcher,
		searcher.WithDepth(config.Depth),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMetrics(),
	)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}
	return agent.NewEvaluationAgent(s), nil
}
