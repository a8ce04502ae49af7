package searcher

import (
	"errors"

	"dastan/experiments/metrics"
	"dastan/game"
)

var ErrNegativeDepth = errors.New("search depth must not be negative")

// Result of a search. Found is false when no move was chosen: at depth 0, or
// when the side to move has no legal move.
type Result struct {
	Value  int
	Move   game.Move
	Found  bool
	Metric metrics.SearchMetric
}

// Search runs a sequential minimax search with player one's and player two's
// states, scores and queues. maximizing selects player one as the side to
// move. A negative depth is treated as 0.
func Search(p1, p2 game.PlayerState, score1, score2 int, queue1, queue2 game.MoveQueue, maximizing bool, depth int) (int, game.Move, bool) {
	turn := game.PlayerTwo
	if maximizing {
		turn = game.PlayerOne
	}
	pos := game.NewPosition(p1, p2, score1, score2, queue1, queue2, turn)
	return minimax(pos, depth, metrics.NewDummyCollector())
}

// minimax returns the value of pos searched to depth together with the first
// move reaching it. Player one maximizes the score differential, player two
// minimizes it.
func minimax(pos game.Position, depth int, stats metrics.Collector) (int, game.Move, bool) {
	stats.AddNode()
	if depth <= 0 {
		stats.AddLeaf()
		return game.Evaluate(pos), game.Move{}, false
	}

	candidates := game.Candidates(pos)
	if len(candidates) == 0 {
		// A side that cannot move is scored as it stands
		stats.AddLeaf()
		return game.Evaluate(pos), game.Move{}, false
	}

	values := make([]int, len(candidates))
	for i, c := range candidates {
		values[i], _, _ = minimax(game.Apply(pos, c), depth-1, stats)
	}
	best := pick(values, pos.Turn == game.PlayerOne)
	return values[best], candidates[best].Move, true
}

// pick returns the index of the extreme value. Only a strictly better value
// replaces the current best, so ties go to the earliest candidate.
func pick(values []int, maximizing bool) int {
	best := 0
	for i, value := range values[1:] {
		if maximizing && value > values[best] || !maximizing && value < values[best] {
			best = i + 1
		}
	}
	return best
}
