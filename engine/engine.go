package engine

import (
	"context"
	"gamesearch/experiments/metrics"
)

const MaxMoves = 10000

type Engine interface {
	// Run plays a game till an agent is stuck or a max number of moves is reached
	Run(ctx context.Context) (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
