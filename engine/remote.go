package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"dastan/agent"
	"dastan/communication"
	"dastan/game"
	"dastan/meta"

	"github.com/rs/zerolog/log"
)

// Remote plays the turns of a game running behind a Communicator.
type Remote struct {
	comm     communication.Communicator
	agent    agent.Agent
	MaxTurns int
}

func NewRemote(comm communication.Communicator, a agent.Agent) *Remote {
	return &Remote{
		comm:     comm,
		agent:    a,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run plays turns until the game stops producing output.
func (r *Remote) Run(ctx context.Context) error {
	for turn := 1; turn <= r.MaxTurns; turn++ {
		move, err := r.PlayTurn(ctx)
		if errors.Is(err, io.EOF) {
			log.Info().Msgf("game ended after %d turns", turn-1)
			return nil
		}
		if err != nil {
			return fmt.Errorf("turn %d: %w", turn, err)
		}
		log.Info().Msgf("turn %d: played %s", turn, move)
	}
	log.Warn().Msgf("stopped after %d turns", r.MaxTurns)
	return nil
}

// PlayTurn reads the board and status of the player to move, searches for
// its best move and answers the game's prompts with it.
func (r *Remote) PlayTurn(ctx context.Context) (game.Move, error) {
	pos, err := r.readPosition()
	if err != nil {
		return game.Move{}, err
	}

	move, _, err := r.agent.FindMove(ctx, pos)
	if err != nil {
		return game.Move{}, fmt.Errorf("%s: %w", pos.Turn, err)
	}

	for _, answer := range communication.EncodeMove(move) {
		if _, err := r.comm.ReadTo(": "); err != nil {
			return move, err
		}
		if err := r.comm.WriteLine(answer); err != nil {
			return move, err
		}
	}
	return move, nil
}

// readPosition builds the searched position from one turn's output. Only the
// mover's queue and score are printed: the opponent is assumed to hold the same
// queue and a score of 0, which shifts every value equally and leaves the
// chosen move unchanged.
func (r *Remote) readPosition() (game.Position, error) {
	grid, err := r.readLines(communication.GridLines)
	if err != nil {
		return game.Position{}, err
	}
	p1, p2, err := communication.ParseGrid(grid)
	if err != nil {
		return game.Position{}, err
	}

	lines, err := r.readLines(communication.StatusLines)
	if err != nil {
		return game.Position{}, err
	}
	status, err := communication.ParseStatus(lines)
	if err != nil {
		return game.Position{}, err
	}
	log.Debug().Msgf("%s to move with score %d, queue %v, offer %s", status.Player, status.Score, status.Queue, status.Offer)

	pos := game.NewPosition(p1, p2, 0, 0, status.Queue, status.Queue, status.Player)
	pos.Scores[status.Player] = status.Score
	return pos, nil
}

func (r *Remote) readLines(n int) ([]string, error) {
	lines := make([]string, n)
	for i := range lines {
		line, err := r.comm.ReadLine()
		if err != nil {
			return nil, err
		}
		lines[i] = line
	}
	return lines, nil
}
