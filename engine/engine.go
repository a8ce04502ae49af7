package engine

import (
	"context"

	"dastan/experiments/metrics"
)

type Engine interface {
	// Run plays a game till a mirza is captured, a side cannot move or a max number of moves is reached
	Run(ctx context.Context) (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
