package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dastan/agent"
	"dastan/experiments/metrics"
	"dastan/game"
	"dastan/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

// LocalEngine plays a game between two in-process agents.
type LocalEngine struct {
	State    game.Position
	Agents   [2]agent.Agent
	MaxTurns int
}

func NewLocalEngine(agents [2]agent.Agent, start game.Position) *LocalEngine {
	return &LocalEngine{
		State:    start,
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the game loop until it is over.
func (e *LocalEngine) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		StartingPlayer: playerID(e.State.Turn),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("game %s: %s is starting", gameMetric.ID, e.State.Turn)

	var moveMetrics []metrics.MoveMetric
	for step := 1; step <= e.MaxTurns && !e.State.MirzaCaptured(); step++ {
		side := e.State.Turn
		move, searchMetric, err := e.Agents[side].FindMove(ctx, e.State)
		if errors.Is(err, agent.ErrNoMove) {
			log.Info().Msgf("game %s: %s has no legal move", gameMetric.ID, side)
			break
		}
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", side, err)
		}

		next, err := game.Play(e.State, move)
		if err != nil {
			return gameMetric, moveMetrics, err
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       playerID(side),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		e.State = next
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Score1 = e.State.Scores[game.PlayerOne]
	gameMetric.Score2 = e.State.Scores[game.PlayerTwo]
	if winner, ok := game.Winner(e.State); ok {
		gameMetric.Winner = winner.String()
	}
	log.Info().Msgf("game %s: over after %d moves, scores %d to %d", gameMetric.ID, gameMetric.TotalMoves, gameMetric.Score1, gameMetric.Score2)

	return gameMetric, moveMetrics, nil
}

func playerID(side game.Side) int {
	return int(side) + 1
}
