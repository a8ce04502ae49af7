package communication

import (
	"fmt"

	"dastan/game"
)

// GridLines is the number of lines the game prints for the board.
const GridLines = 9

// Header lines printed above the first board row
const gridHeader = 2

// Cell symbols printed by the game. Each cell is a delimiter, a kotla symbol
// and a piece symbol.
const (
	cellDelimiter = '|'
	kotlaOne      = 'K'
	kotlaTwo      = 'k'
	pieceOne      = '!'
	pieceTwo      = '"'
	mirzaOne      = '1'
	mirzaTwo      = '2'
)

// Each row starts with the row number and a space
const rowPrefix = 2

// ParseGrid reads both players' positions from the rendered board. Rows are
// numbered top down from y = 0 and columns left to right from x = 0.
func ParseGrid(lines []string) (p1, p2 game.PlayerState, err error) {
	if len(lines) < gridHeader+game.Height {
		return p1, p2, fmt.Errorf("%w: got %d lines, want at least %d", ErrMalformedGrid, len(lines), gridHeader+game.Height)
	}
	p1.Mirza, p2.Mirza = game.NoMirza, game.NoMirza

	for y, line := range lines[gridHeader : gridHeader+game.Height] {
		if len(line) < rowPrefix+3*game.Width {
			return p1, p2, fmt.Errorf("%w: row %d is too short: %q", ErrMalformedGrid, y, line)
		}
		for x := 0; x < game.Width; x++ {
			cell := line[rowPrefix+3*x : rowPrefix+3*x+3]
			if cell[0] != cellDelimiter {
				return p1, p2, fmt.Errorf("%w: row %d column %d starts with %q", ErrMalformedGrid, y, x, cell[0])
			}
			c := game.Coordinate{X: x, Y: y}

			switch cell[1] {
			case kotlaOne:
				p1.Kotla = c
			case kotlaTwo:
				p2.Kotla = c
			}

			switch cell[2] {
			case pieceOne:
				p1.Pieces = append(p1.Pieces, c)
			case pieceTwo:
				p2.Pieces = append(p2.Pieces, c)
			case mirzaOne:
				p1.Mirza = game.NewMirza(c)
			case mirzaTwo:
				p2.Mirza = game.NewMirza(c)
			}
		}
	}
	return p1, p2, nil
}
