package game

// Position is the full state searched by the engine: both players, their
// running scores and queues, and the side to move.
//
// Positions are values. Transitions return new positions and never modify
// the slices of the position they were derived from, so sibling search
// branches never observe each other.
type Position struct {
	Players [2]PlayerState
	Scores  [2]int
	Queues  [2]MoveQueue
	Turn    Side
}

func NewPosition(p1, p2 PlayerState, score1, score2 int, queue1, queue2 MoveQueue, turn Side) Position {
	return Position{
		Players: [2]PlayerState{p1, p2},
		Scores:  [2]int{score1, score2},
		Queues:  [2]MoveQueue{queue1, queue2},
		Turn:    turn,
	}
}

// StartingScore is each player's score at the beginning of a game.
const StartingScore = 100

// NewStandardPosition returns the opening layout: each mirza on its kotla in
// the middle of the back row with four pieces in front of it.
func NewStandardPosition() Position {
	p1 := PlayerState{
		Kotla:  Coordinate{X: 2, Y: 5},
		Mirza:  NewMirza(Coordinate{X: 2, Y: 5}),
		Pieces: []Coordinate{{X: 1, Y: 4}, {X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4}},
	}
	p2 := PlayerState{
		Kotla:  Coordinate{X: 3, Y: 0},
		Mirza:  NewMirza(Coordinate{X: 3, Y: 0}),
		Pieces: []Coordinate{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}},
	}
	queue := MoveQueue{Ryott, Chowkidar, Cuirassier}
	return NewPosition(p1, p2, StartingScore, StartingScore, queue, queue, PlayerOne)
}

func (pos Position) Mover() PlayerState {
	return pos.Players[pos.Turn]
}

func (pos Position) Defender() PlayerState {
	return pos.Players[pos.Turn.Opponent()]
}

// Copy returns a deep copy of pos.
func (pos Position) Copy() Position {
	next := pos
	next.Players[PlayerOne] = pos.Players[PlayerOne].Copy()
	next.Players[PlayerTwo] = pos.Players[PlayerTwo].Copy()
	return next
}

// MirzaCaptured reports whether either side has lost its mirza.
func (pos Position) MirzaCaptured() bool {
	_, ok1 := pos.Players[PlayerOne].Mirza.Position()
	_, ok2 := pos.Players[PlayerTwo].Mirza.Position()
	return !ok1 || !ok2
}
