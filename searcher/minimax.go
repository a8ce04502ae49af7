package searcher

import (
	"context"
	"fmt"

	"dastan/experiments/metrics"
	"dastan/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Minimax searches a position to a fixed depth. A Minimax must not run two
// searches at the same time when it collects metrics.
type Minimax struct {
	goroutines int
	metrics    metrics.Collector
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Search returns the best move for the side to move in pos. The root moves
// are fanned out across goroutines when configured; the result is the same
// as a sequential search.
func (m *Minimax) Search(ctx context.Context, pos game.Position, depth int) (Result, error) {
	if depth < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	m.metrics.Start(m.goroutines, depth)

	var candidates []game.Candidate
	if depth > 0 {
		candidates = game.Candidates(pos)
	}
	if len(candidates) == 0 {
		value, _, _ := minimax(pos, 0, m.metrics)
		return Result{Value: value, Metric: m.metrics.Complete(value)}, nil
	}
	m.metrics.AddNode()

	values, err := m.evaluate(ctx, pos, candidates, depth-1)
	if err != nil {
		return Result{}, err
	}
	best := pick(values, pos.Turn == game.PlayerOne)

	result := Result{
		Value:  values[best],
		Move:   candidates[best].Move,
		Found:  true,
		Metric: m.metrics.Complete(values[best]),
	}
	log.Debug().Msgf("%s searched %d nodes to depth %d in %s: %s scores %d",
		pos.Turn, result.Metric.Nodes, depth, result.Metric.Duration, result.Move, result.Value)
	return result, nil
}

// evaluate returns the minimax value of every root candidate, indexed like candidates.
func (m *Minimax) evaluate(ctx context.Context, pos game.Position, candidates []game.Candidate, depth int) ([]int, error) {
	values := make([]int, len(candidates))

	if m.goroutines <= 1 {
		for i, c := range candidates {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			values[i], _, _ = minimax(game.Apply(pos, c), depth, m.metrics)
		}
		return values, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.goroutines)
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Each branch works on its own successor position
			values[i], _, _ = minimax(game.Apply(pos, c), depth, m.metrics)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
