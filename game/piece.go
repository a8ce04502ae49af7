package game

import (
	"fmt"
	"strings"
)

// PieceKind names a move option. The set of kinds is closed.
type PieceKind int

const (
	Ryott PieceKind = iota
	Chowkidar
	Cuirassier
	Faujdar
	Jazair
	numPieceKinds
)

var pieceNames = [numPieceKinds]string{
	Ryott:      "ryott",
	Chowkidar:  "chowkidar",
	Cuirassier: "cuirassier",
	Faujdar:    "faujdar",
	Jazair:     "jazair",
}

var pieceOffsets = [numPieceKinds][]Offset{
	Ryott:      {{1, 0}, {-1, 0}, {0, 1}, {0, -1}},
	Chowkidar:  {{1, 1}, {2, 0}, {1, -1}, {-1, 1}, {-2, 0}, {-1, -1}},
	Cuirassier: {{0, 2}, {0, 1}, {2, 1}, {-2, 1}},
	Faujdar:    {{-2, 0}, {-1, 0}, {1, 0}, {2, 0}},
	Jazair:     {{0, 2}, {2, 2}, {2, 0}, {1, -1}, {-1, -1}, {-2, 0}, {-2, 2}},
}

// Offsets returns the kind's displacements in table order. The slice must not be modified.
func (k PieceKind) Offsets() []Offset {
	return pieceOffsets[k]
}

func (k PieceKind) Valid() bool {
	return k >= 0 && k < numPieceKinds
}

func (k PieceKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("PieceKind(%d)", int(k))
	}
	return pieceNames[k]
}

// ParsePieceKind maps a move option name as printed by the game to its kind.
func ParsePieceKind(name string) (PieceKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range pieceNames {
		if n == name {
			return PieceKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPieceKind, name)
}
