package experiments

import (
	"encoding/json"
	"os"

	"checkers/game"
	"checkers/meta"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
)

const cfgFile = "checkers/experiments.json"

// Config describes a batch of match-ups. Every depth in Depths plays a
// negamax agent against the greedy baseline.
type Config struct {
	Games       int    `json:"games"`       // per match-up
	Concurrency int    `json:"concurrency"` // games played at once
	Depths      []int  `json:"depths"`
	Goroutines  int    `json:"goroutines"` // root fan-out of each negamax search
	Evaluator   string `json:"evaluator"`
	Seed        uint64 `json:"seed"`
	OutputDir   string `json:"output_dir"`
}

func DefaultConfig() Config {
	return Config{
		Games:       meta.GAMES,
		Concurrency: meta.GO_ROUTINES,
		Depths:      []int{1, 2, meta.DefaultDepth},
		Goroutines:  1,
		Evaluator:   "material",
		OutputDir:   "results",
	}
}

// LoadConfig reads the experiment config from the XDG config directories.
// Defaults are used when no file exists.
func LoadConfig() (Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		cfg := DefaultConfig()
		return cfg, cfg.Validate()
	}
	return LoadConfigFile(absPath)
}

// LoadConfigFile reads path on top of the defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Games < 1 {
		return errors.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Concurrency < 1 {
		return errors.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	if len(c.Depths) == 0 {
		return errors.New("at least one depth is required")
	}
	for _, depth := range c.Depths {
		if depth < 1 {
			return errors.Errorf("depth must be positive, got %d", depth)
		}
	}
	if c.Goroutines < 1 {
		return errors.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	if _, ok := game.Evaluators[c.Evaluator]; !ok {
		return errors.Errorf("unknown evaluator %q", c.Evaluator)
	}
	if c.OutputDir == "" {
		return errors.New("output directory is required")
	}
	return nil
}
