package engine

import (
	"fmt"
	"time"

	"checkers/agent"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/meta"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	Game     *gamemaster.LocalGame
	Agents   [2]agent.Agent // Agents[0] plays black, Agents[1] plays red
	MaxTurns int
}

var _ Engine = (*LocalEngine)(nil)

// NewLocalEngine pairs two agents on a fresh game.
func NewLocalEngine(agents [2]agent.Agent) *LocalEngine {
	return NewLocalEngineFrom(agents, game.NewBoard())
}

// NewLocalEngineFrom pairs two agents on a game starting from b.
func NewLocalEngineFrom(agents [2]agent.Agent, b *game.Board) *LocalEngine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	return &LocalEngine{
		Game:     gamemaster.NewLocalGameFrom(b),
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
	}
}

func agentIndex(c game.Color) int {
	if c == game.Black {
		return 0
	}
	return 1
}

// Run executes the game loop until there is a winner or MaxTurns plies were
// played.
func (e *LocalEngine) Run() (game.Color, bool, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Game.CurrentPlayer().String(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%s is starting", gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	turnCount := 1
	for !e.Game.IsGameOver() && turnCount <= e.MaxTurns {
		player := e.Game.CurrentPlayer()

		move, searchMetric, err := e.Agents[agentIndex(player)].FindMove(e.Game.Board())
		if err != nil {
			return 0, false, gameMetric, moveMetrics, fmt.Errorf("turn %d: %s agent: %w", turnCount, player, err)
		}
		if err := e.Game.ApplyMove(move); err != nil {
			return 0, false, gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turnCount, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("turn", turnCount).Str("player", player.String()).Msgf("played %s", move)
		turnCount++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	winner, decided := e.Game.Winner()
	if decided {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("game ended after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	} else {
		log.Info().Msgf("stopped after %d moves without a winner", gameMetric.TotalMoves)
	}
	return winner, decided, gameMetric, moveMetrics, nil
}
