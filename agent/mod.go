package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dastan/experiments/metrics"
	"dastan/game"
	"dastan/searcher"

	"golang.org/x/exp/rand"
)

var (
	ErrNoMove       = errors.New("no legal move")
	ErrInvalidDepth = errors.New("minimax agent needs a depth of at least 1")
)

type Agent interface {
	FindMove(ctx context.Context, pos game.Position) (game.Move, metrics.SearchMetric, error)
}

// MinimaxAgent plays the minimax move at a fixed depth.
type MinimaxAgent struct {
	depth    int
	searcher *searcher.Minimax
}

func NewMinimaxAgent(depth int, options ...searcher.Option) *MinimaxAgent {
	return &MinimaxAgent{
		depth:    depth,
		searcher: searcher.NewMinimax(options...),
	}
}

func (a *MinimaxAgent) FindMove(ctx context.Context, pos game.Position) (game.Move, metrics.SearchMetric, error) {
	// Depth 0 only scores the position and never chooses a move
	if a.depth < 1 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: got %d", ErrInvalidDepth, a.depth)
	}
	result, err := a.searcher.Search(ctx, pos, a.depth)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	if !result.Found {
		return game.Move{}, result.Metric, ErrNoMove
	}
	return result.Move, result.Metric, nil
}

// RandomAgent plays a uniformly random legal move. Games are reproducible for a given seed.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(ctx context.Context, pos game.Position) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	candidates := game.Candidates(pos)
	if len(candidates) == 0 {
		return game.Move{}, metrics.SearchMetric{}, ErrNoMove
	}
	c := candidates[a.rng.Intn(len(candidates))]
	return c.Move, metrics.SearchMetric{Goroutines: 1, Duration: time.Since(start), Nodes: 1}, nil
}
