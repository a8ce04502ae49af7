package game

import (
	"errors"
	"fmt"

	"dastan/utils"
)

var ErrIllegalMove = errors.New("illegal move")

// Candidates enumerates the legal moves of the side to move in a fixed order:
// queue slots 0 to 2, then the mover's pieces in stored order, then the
// offsets of the slot's kind in table order. Move choice depends on this order.
func Candidates(pos Position) []Candidate {
	mover := pos.Mover()
	defender := pos.Defender()
	sign := pos.Turn.direction()
	queue := pos.Queues[pos.Turn]

	var candidates []Candidate
	for slot := 0; slot < QueueSize; slot++ {
		for index, from := range mover.Pieces {
			for _, offset := range queue.Kind(slot).Offsets() {
				to := from.shift(offset, sign)
				if !to.OnBoard() || mover.Occupies(to) {
					continue
				}
				candidates = append(candidates, evaluate(mover, defender, slot, index, from, to))
			}
		}
	}
	return candidates
}

func evaluate(mover, defender PlayerState, slot, index int, from, to Coordinate) Candidate {
	c := Candidate{
		Move:          Move{Slot: slot, From: from, To: to},
		PieceIndex:    index,
		Delta:         -SlotCost(slot),
		CapturedIndex: captureIndex(defender, to),
	}
	if c.CapturedIndex >= 0 {
		c.Delta += CapturePieceBonus
	}
	if defender.Mirza.At(to) {
		c.MirzaCaptured = true
		c.Delta += CaptureMirzaBonus
	}
	if occupiesAfter(mover, index, to, mover.Kotla) {
		c.Delta += HomeKotlaBonus
	}
	if occupiesAfter(mover, index, to, defender.Kotla) {
		c.Delta += EnemyKotlaBonus
	}
	return c
}

// captureIndex returns the index of the defender piece standing on c, or -1.
// Two defender pieces on one square means the position was built wrong.
func captureIndex(defender PlayerState, c Coordinate) int {
	if n := utils.Count(defender.Pieces, c); n > 1 {
		panic(fmt.Sprintf("defender has %d pieces on %v", n, c))
	}
	return utils.FindIndex(defender.Pieces, c)
}

// occupiesAfter reports whether the mover holds square once the piece at index has moved to dest.
func occupiesAfter(mover PlayerState, index int, dest, square Coordinate) bool {
	if dest == square || mover.Mirza.At(square) {
		return true
	}
	for i, piece := range mover.Pieces {
		if i != index && piece == square {
			return true
		}
	}
	return false
}

// Apply returns the position reached by playing c, which must have been
// generated by Candidates(pos). pos is left untouched.
func Apply(pos Position, c Candidate) Position {
	moverSide := pos.Turn
	defenderSide := moverSide.Opponent()

	next := pos
	next.Players[moverSide] = pos.Players[moverSide].withPieceAt(c.PieceIndex, c.To)
	next.Queues[moverSide] = pos.Queues[moverSide].Rotate(c.Slot)
	next.Scores[moverSide] += c.Delta

	defender := pos.Players[defenderSide]
	if c.CapturedIndex >= 0 {
		defender = defender.without(c.CapturedIndex)
	}
	if c.MirzaCaptured {
		defender.Mirza = NoMirza
	}
	next.Players[defenderSide] = defender
	next.Turn = defenderSide
	return next
}

// Play validates move against the legal candidates of pos and applies it.
func Play(pos Position, move Move) (Position, error) {
	for _, c := range Candidates(pos) {
		if c.Move == move {
			return Apply(pos, c), nil
		}
	}
	return pos, fmt.Errorf("%w for %s: %s", ErrIllegalMove, pos.Turn, move)
}
