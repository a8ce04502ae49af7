package game

import "errors"

// Board dimensions of a Dastan game
const (
	Width  = 6
	Height = 6
)

// Score bonuses awarded to the moving side
const (
	CapturePieceBonus = 1
	CaptureMirzaBonus = 5
	HomeKotlaBonus    = 5
	EnemyKotlaBonus   = 1
)

var ErrUnknownPieceKind = errors.New("unknown piece kind")

// Side identifies one of the two players. PlayerOne is always the maximizing side.
type Side int

const (
	PlayerOne Side = iota
	PlayerTwo
)

func (s Side) Opponent() Side {
	return 1 - s
}

// direction is the sign applied to move offsets: the two sides face opposite board orientations.
func (s Side) direction() int {
	if s == PlayerOne {
		return -1
	}
	return 1
}

func (s Side) String() string {
	if s == PlayerOne {
		return "Player One"
	}
	return "Player Two"
}

// Coordinate is a square on the board, X is the column and Y is the row.
type Coordinate struct {
	X int
	Y int
}

func (c Coordinate) OnBoard() bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

// Offset is a relative displacement belonging to a piece kind's move option.
type Offset struct {
	DX int
	DY int
}

func (c Coordinate) shift(o Offset, sign int) Coordinate {
	return Coordinate{X: c.X + sign*o.DX, Y: c.Y + sign*o.DY}
}
