package communication

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"dastan/game"
)

// StatusLines is the number of lines the game prints after the board and
// before its prompts: offer, player, score, queue and a separator.
const StatusLines = 5

var (
	offerPattern = regexp.MustCompile(`^Move option offer: (.+)$`)
	scorePattern = regexp.MustCompile(`^Score: (-?\d+)$`)
	queuePattern = regexp.MustCompile(`\d\. ([a-z]+)`)
)

// Status is what the game reports about the player to move.
type Status struct {
	Offer  game.PieceKind
	Player game.Side
	Score  int
	Queue  game.MoveQueue
}

// ParseStatus parses the offer, player, score and queue lines in that order.
func ParseStatus(lines []string) (Status, error) {
	var s Status
	if len(lines) < 4 {
		return s, fmt.Errorf("%w: got %d lines, want 4", ErrMalformedStatus, len(lines))
	}
	var err error
	if s.Offer, err = ParseOffer(lines[0]); err != nil {
		return s, err
	}
	if s.Player, err = ParsePlayer(lines[1]); err != nil {
		return s, err
	}
	if s.Score, err = ParseScore(lines[2]); err != nil {
		return s, err
	}
	if s.Queue, err = ParseQueue(lines[3]); err != nil {
		return s, err
	}
	return s, nil
}

func ParseOffer(line string) (game.PieceKind, error) {
	m := offerPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, fmt.Errorf("%w: not an offer: %q", ErrMalformedStatus, line)
	}
	return game.ParsePieceKind(m[1])
}

func ParsePlayer(line string) (game.Side, error) {
	switch strings.TrimSpace(line) {
	case "Player One":
		return game.PlayerOne, nil
	case "Player Two":
		return game.PlayerTwo, nil
	}
	return 0, fmt.Errorf("%w: not a player: %q", ErrMalformedStatus, line)
}

func ParseScore(line string) (int, error) {
	m := scorePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, fmt.Errorf("%w: not a score: %q", ErrMalformedStatus, line)
	}
	return strconv.Atoi(m[1])
}

// ParseQueue reads the numbered move options of a queue line. The game may
// list more than three options; only the selectable first three are kept.
func ParseQueue(line string) (game.MoveQueue, error) {
	var q game.MoveQueue
	matches := queuePattern.FindAllStringSubmatch(line, -1)
	if len(matches) < game.QueueSize {
		return q, fmt.Errorf("%w: queue has %d options, want at least %d: %q", ErrMalformedStatus, len(matches), game.QueueSize, line)
	}
	for i := range q {
		kind, err := game.ParsePieceKind(matches[i][1])
		if err != nil {
			return q, err
		}
		q[i] = kind
	}
	return q, nil
}
