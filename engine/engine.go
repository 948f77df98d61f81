package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

type Engine interface {
	// Run plays a game until it is decided or the turn cap is reached
	Run() (winner game.Color, decided bool, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
