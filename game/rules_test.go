package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var ryotts = MoveQueue{Ryott, Ryott, Ryott}

func at(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// lonePosition has player one's single piece at (2,2) with both kotlas and
// the defender far away from it.
func lonePosition() Position {
	p1 := PlayerState{Kotla: at(0, 5), Mirza: NoMirza, Pieces: []Coordinate{at(2, 2)}}
	p2 := PlayerState{Kotla: at(5, 0), Mirza: NoMirza}
	return NewPosition(p1, p2, 0, 0, ryotts, ryotts, PlayerOne)
}

func findCandidate(t *testing.T, candidates []Candidate, slot int, from, to Coordinate) Candidate {
	t.Helper()
	for _, c := range candidates {
		if c.Move == (Move{Slot: slot, From: from, To: to}) {
			return c
		}
	}
	require.FailNow(t, "candidate not found", "slot %d %v -> %v", slot, from, to)
	return Candidate{}
}

func TestCandidatesOrder(t *testing.T) {
	candidates := Candidates(lonePosition())

	require.Len(t, candidates, 12)
	// Player one subtracts offsets
	require.Equal(t, Move{Slot: 0, From: at(2, 2), To: at(1, 2)}, candidates[0].Move)
	require.Equal(t, Move{Slot: 0, From: at(2, 2), To: at(3, 2)}, candidates[1].Move)
	require.Equal(t, Move{Slot: 0, From: at(2, 2), To: at(2, 1)}, candidates[2].Move)
	require.Equal(t, Move{Slot: 0, From: at(2, 2), To: at(2, 3)}, candidates[3].Move)
	require.Equal(t, 1, candidates[4].Slot)
	require.Equal(t, 2, candidates[8].Slot)
}

func TestCandidatesDirection(t *testing.T) {
	pos := lonePosition()
	pos.Players[PlayerTwo].Pieces = []Coordinate{at(2, 2)}
	pos.Players[PlayerOne].Pieces = []Coordinate{at(4, 4)}
	pos.Turn = PlayerTwo

	candidates := Candidates(pos)

	// Player two adds offsets
	require.Equal(t, at(3, 2), candidates[0].To)
	require.Equal(t, at(1, 2), candidates[1].To)
	require.Equal(t, at(2, 3), candidates[2].To)
	require.Equal(t, at(2, 1), candidates[3].To)
}

func TestCandidatesDelta(t *testing.T) {
	t.Run("plain move costs the slot", func(t *testing.T) {
		candidates := Candidates(lonePosition())
		require.Equal(t, -1, findCandidate(t, candidates, 0, at(2, 2), at(1, 2)).Delta)
		require.Equal(t, -4, findCandidate(t, candidates, 1, at(2, 2), at(1, 2)).Delta)
		require.Equal(t, -7, findCandidate(t, candidates, 2, at(2, 2), at(1, 2)).Delta)
	})

	t.Run("capturing a piece", func(t *testing.T) {
		pos := lonePosition()
		pos.Players[PlayerTwo].Pieces = []Coordinate{at(1, 2)}

		c := findCandidate(t, Candidates(pos), 0, at(2, 2), at(1, 2))

		require.Equal(t, 0, c.Delta)
		require.Equal(t, 0, c.CapturedIndex)
		require.False(t, c.MirzaCaptured)
	})

	t.Run("capturing the mirza", func(t *testing.T) {
		pos := lonePosition()
		pos.Players[PlayerTwo].Mirza = NewMirza(at(1, 2))

		c := findCandidate(t, Candidates(pos), 0, at(2, 2), at(1, 2))

		require.Equal(t, 4, c.Delta)
		require.Equal(t, -1, c.CapturedIndex)
		require.True(t, c.MirzaCaptured)
	})

	t.Run("returning to the own kotla", func(t *testing.T) {
		pos := lonePosition()
		pos.Players[PlayerOne].Kotla = at(1, 2)

		candidates := Candidates(pos)

		require.Equal(t, 4, findCandidate(t, candidates, 0, at(2, 2), at(1, 2)).Delta)
		require.Equal(t, -1, findCandidate(t, candidates, 0, at(2, 2), at(3, 2)).Delta)
	})

	t.Run("own kotla is judged on the resulting pieces", func(t *testing.T) {
		pos := lonePosition()
		pos.Players[PlayerOne].Pieces = []Coordinate{at(2, 2), at(0, 5)}

		candidates := Candidates(pos)

		require.Equal(t, 4, findCandidate(t, candidates, 0, at(2, 2), at(1, 2)).Delta, "Other piece still holds the kotla")
		require.Equal(t, -1, findCandidate(t, candidates, 0, at(0, 5), at(0, 4)).Delta, "Piece leaves the kotla")
	})

	t.Run("own mirza on the kotla", func(t *testing.T) {
		pos := lonePosition()
		pos.Players[PlayerOne].Mirza = NewMirza(at(0, 5))

		require.Equal(t, 4, findCandidate(t, Candidates(pos), 0, at(2, 2), at(3, 2)).Delta)
	})

	t.Run("entering the enemy kotla", func(t *testing.T) {
		pos := lonePosition()
		pos.Players[PlayerTwo].Kotla = at(1, 2)

		require.Equal(t, 0, findCandidate(t, Candidates(pos), 0, at(2, 2), at(1, 2)).Delta)
	})

	t.Run("bonuses add up", func(t *testing.T) {
		pos := lonePosition()
		pos.Players[PlayerTwo].Kotla = at(1, 2)
		pos.Players[PlayerTwo].Pieces = []Coordinate{at(1, 2)}

		require.Equal(t, -4+1+1, findCandidate(t, Candidates(pos), 1, at(2, 2), at(1, 2)).Delta)
	})
}

func TestCandidatesBounds(t *testing.T) {
	t.Run("player one in a corner", func(t *testing.T) {
		pos := lonePosition()
		pos.Players[PlayerOne].Pieces = []Coordinate{at(0, 0)}

		candidates := Candidates(pos)

		require.Len(t, candidates, 6)
		for _, c := range candidates {
			require.True(t, c.To.OnBoard(), "Destination %v should be on the board", c.To)
		}
	})

	t.Run("player two in a corner", func(t *testing.T) {
		pos := lonePosition()
		pos.Players[PlayerTwo].Pieces = []Coordinate{at(5, 5)}
		pos.Turn = PlayerTwo

		candidates := Candidates(pos)

		require.Len(t, candidates, 6)
		require.Equal(t, at(4, 5), candidates[0].To)
		require.Equal(t, at(5, 4), candidates[1].To)
	})
}

func TestCandidatesSelfCollision(t *testing.T) {
	pos := lonePosition()
	pos.Players[PlayerOne].Pieces = []Coordinate{at(2, 2), at(1, 2)}
	pos.Players[PlayerOne].Mirza = NewMirza(at(3, 2))

	for _, c := range Candidates(pos) {
		require.False(t, pos.Players[PlayerOne].Occupies(c.To), "Move %s lands on an own piece", c.Move)
	}
	require.Equal(t, at(2, 1), Candidates(pos)[0].To)
}

func TestCandidatesOwnKotlaIsAllowed(t *testing.T) {
	pos := lonePosition()
	pos.Players[PlayerOne].Kotla = at(1, 2)

	c := findCandidate(t, Candidates(pos), 0, at(2, 2), at(1, 2))
	require.Equal(t, at(1, 2), c.To)
}

func TestCandidatesDuplicateDefenderPanics(t *testing.T) {
	pos := lonePosition()
	pos.Players[PlayerTwo].Pieces = []Coordinate{at(1, 2), at(1, 2)}

	require.Panics(t, func() { Candidates(pos) })
}

func TestApply(t *testing.T) {
	t.Run("capture removes the piece by index", func(t *testing.T) {
		pos := lonePosition()
		pos.Scores = [2]int{10, 3}
		pos.Queues[PlayerOne] = MoveQueue{Ryott, Jazair, Faujdar}
		pos.Players[PlayerTwo].Pieces = []Coordinate{at(4, 4), at(1, 2), at(5, 5)}

		c := findCandidate(t, Candidates(pos), 0, at(2, 2), at(1, 2))
		next := Apply(pos, c)

		require.Equal(t, []Coordinate{at(1, 2)}, next.Players[PlayerOne].Pieces)
		require.Equal(t, []Coordinate{at(4, 4), at(5, 5)}, next.Players[PlayerTwo].Pieces)
		require.Equal(t, [2]int{10, 3}, next.Scores, "Capture pays for the cheapest slot")
		require.Equal(t, MoveQueue{Jazair, Faujdar, Ryott}, next.Queues[PlayerOne])
		require.Equal(t, ryotts, next.Queues[PlayerTwo])
		require.Equal(t, PlayerTwo, next.Turn)
	})

	t.Run("capture of the first piece", func(t *testing.T) {
		pos := lonePosition()
		pos.Players[PlayerTwo].Pieces = []Coordinate{at(1, 2)}

		next := Apply(pos, findCandidate(t, Candidates(pos), 0, at(2, 2), at(1, 2)))

		require.Empty(t, next.Players[PlayerTwo].Pieces)
	})

	t.Run("mirza capture", func(t *testing.T) {
		pos := lonePosition()
		pos.Players[PlayerTwo].Mirza = NewMirza(at(1, 2))

		next := Apply(pos, findCandidate(t, Candidates(pos), 0, at(2, 2), at(1, 2)))

		_, present := next.Players[PlayerTwo].Mirza.Position()
		require.False(t, present)
		require.True(t, next.MirzaCaptured())
		require.Equal(t, 4, next.Scores[PlayerOne])
	})

	t.Run("parent position is untouched", func(t *testing.T) {
		pos := lonePosition()
		pos.Players[PlayerTwo].Pieces = []Coordinate{at(4, 4), at(1, 2)}
		before := pos.Copy()

		for _, c := range Candidates(pos) {
			Apply(pos, c)
		}

		require.Equal(t, before, pos)
	})
}

func TestPlay(t *testing.T) {
	pos := lonePosition()

	next, err := Play(pos, Move{Slot: 0, From: at(2, 2), To: at(1, 2)})
	require.NoError(t, err)
	require.Equal(t, []Coordinate{at(1, 2)}, next.Players[PlayerOne].Pieces)

	_, err = Play(pos, Move{Slot: 0, From: at(2, 2), To: at(4, 4)})
	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestWinner(t *testing.T) {
	pos := lonePosition()

	pos.Scores = [2]int{5, 3}
	winner, ok := Winner(pos)
	require.True(t, ok)
	require.Equal(t, PlayerOne, winner)

	pos.Scores = [2]int{3, 5}
	winner, ok = Winner(pos)
	require.True(t, ok)
	require.Equal(t, PlayerTwo, winner)

	pos.Scores = [2]int{3, 3}
	_, ok = Winner(pos)
	require.False(t, ok)
}

func TestStandardPosition(t *testing.T) {
	pos := NewStandardPosition()

	require.Equal(t, PlayerOne, pos.Turn)
	require.False(t, pos.MirzaCaptured())
	require.NotEmpty(t, Candidates(pos))
}
