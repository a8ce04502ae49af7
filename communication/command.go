package communication

import (
	"fmt"
	"strconv"

	"dastan/game"
)

// EncodeMove translates a move into the answers to the game's three prompts:
// the queue slot (1 to 3), then the source and destination squares written
// as row number followed by column number, both counted from 1.
func EncodeMove(m game.Move) []string {
	return []string{
		strconv.Itoa(m.Slot + 1),
		encodeSquare(m.From),
		encodeSquare(m.To),
	}
}

func encodeSquare(c game.Coordinate) string {
	return fmt.Sprintf("%d%d", c.Y+1, c.X+1)
}
