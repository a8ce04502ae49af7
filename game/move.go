package game

import "fmt"

// Move selects a queue slot and moves a piece from one square to another.
type Move struct {
	Slot int
	From Coordinate
	To   Coordinate
}

func (m Move) String() string {
	return fmt.Sprintf("slot %d: (%d,%d) -> (%d,%d)", m.Slot, m.From.X, m.From.Y, m.To.X, m.To.Y)
}

// Candidate is a legal move together with its effects on the position it was generated from.
type Candidate struct {
	Move
	PieceIndex    int
	Delta         int // score change for the mover
	CapturedIndex int // index into the defender's pieces, -1 if nothing was captured
	MirzaCaptured bool
}
