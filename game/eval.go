package game

// Evaluate is the static evaluation of a position: the score differential from
// PlayerOne's perspective, regardless of whose turn it is.
func Evaluate(pos Position) int {
	return pos.Scores[PlayerOne] - pos.Scores[PlayerTwo]
}

// Winner returns the side with the higher score, or false on a tie.
func Winner(pos Position) (Side, bool) {
	switch diff := Evaluate(pos); {
	case diff > 0:
		return PlayerOne, true
	case diff < 0:
		return PlayerTwo, true
	default:
		return PlayerOne, false
	}
}
