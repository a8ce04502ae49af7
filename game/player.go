package game

import (
	"fmt"

	"dastan/utils"
)

// Mirza is a player's special piece, either on the board or captured.
type Mirza struct {
	position Coordinate
	present  bool
}

// NoMirza is the state of a captured mirza.
var NoMirza = Mirza{}

func NewMirza(c Coordinate) Mirza {
	return Mirza{position: c, present: true}
}

func (m Mirza) Position() (Coordinate, bool) {
	return m.position, m.present
}

// At reports whether the mirza is present on square c.
func (m Mirza) At(c Coordinate) bool {
	return m.present && m.position == c
}

func (m Mirza) String() string {
	if !m.present {
		return "captured"
	}
	return fmt.Sprintf("%v", m.position)
}

// PlayerState holds one side's pieces. Kotla never moves during a game.
type PlayerState struct {
	Kotla  Coordinate
	Mirza  Mirza
	Pieces []Coordinate
}

// Copy returns a player state that shares no memory with p.
func (p PlayerState) Copy() PlayerState {
	pieces := make([]Coordinate, len(p.Pieces))
	copy(pieces, p.Pieces)
	return PlayerState{
		Kotla:  p.Kotla,
		Mirza:  p.Mirza,
		Pieces: pieces,
	}
}

func (p PlayerState) HasPieceAt(c Coordinate) bool {
	return utils.FindIndex(p.Pieces, c) >= 0
}

// Occupies reports whether one of the player's pieces or its mirza stands on c.
func (p PlayerState) Occupies(c Coordinate) bool {
	return p.Mirza.At(c) || p.HasPieceAt(c)
}

// withPieceAt returns a copy of p with the piece at index moved to c.
func (p PlayerState) withPieceAt(index int, c Coordinate) PlayerState {
	next := p.Copy()
	next.Pieces[index] = c
	return next
}

// without returns a copy of p with the piece at index removed.
func (p PlayerState) without(index int) PlayerState {
	pieces := make([]Coordinate, 0, len(p.Pieces)-1)
	pieces = append(pieces, p.Pieces[:index]...)
	pieces = append(pieces, p.Pieces[index+1:]...)
	return PlayerState{
		Kotla:  p.Kotla,
		Mirza:  p.Mirza,
		Pieces: pieces,
	}
}
