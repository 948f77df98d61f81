package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"checkers/agent"
	"checkers/engine"
	"checkers/experiments"
	"checkers/meta"
	"checkers/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "strength", "One of strength, throughput or play")
	configPath := flag.String("config", "", "Experiment config file (default: searched in the XDG config directories)")
	games := flag.Int("games", 0, "Games per match-up, overrides the config")
	output := flag.String("output", "", "Output directory, overrides the config")
	challenger := flag.String("searcher", "negamax", "Searcher playing black in play mode: negamax or mcts")
	depth := flag.Int("depth", meta.DefaultDepth, "Negamax depth in play mode")
	episodes := flag.Int("episodes", meta.DefaultEpisodes, "MCTS episodes per move in play mode")
	verbose := flag.Bool("verbose", false, "Log every move")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *mode, *configPath, *games, *output, *challenger, *depth, *episodes); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func run(ctx context.Context, mode, configPath string, games int, output, challenger string, depth, episodes int) error {
	if mode == "play" {
		return play(challenger, depth, episodes)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if games > 0 {
		cfg.Games = games
	}
	if output != "" {
		cfg.OutputDir = output
	}

	var dir string
	switch mode {
	case "strength":
		dir, err = experiments.Run(ctx, cfg)
	case "throughput":
		dir, err = experiments.RunThroughput(ctx, cfg)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		return err
	}
	fmt.Println(dir)
	return nil
}

func loadConfig(path string) (experiments.Config, error) {
	if path == "" {
		return experiments.LoadConfig()
	}
	return experiments.LoadConfigFile(path)
}

// play runs one game of challenger against the greedy baseline and prints
// the final position.
func play(challenger string, depth, episodes int) error {
	s, err := searcher.New(challenger, searcher.WithDepth(depth), searcher.WithEpisodes(episodes))
	if err != nil {
		return err
	}
	greedy := agent.NewEvaluationAgent(searcher.NewGreedy())
	e := engine.NewLocalEngine([2]agent.Agent{agent.NewEvaluationAgent(s), greedy})

	winner, decided, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Print(e.Game.Board())
	if decided {
		fmt.Printf("%s wins after %d moves\n", winner, gameMetric.TotalMoves)
	} else {
		fmt.Printf("no winner after %d moves\n", gameMetric.TotalMoves)
	}
	return nil
}

