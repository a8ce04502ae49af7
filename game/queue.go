package game

// QueueSize is the number of selectable move queue slots.
const QueueSize = 3

// SlotCosts is the score deducted for using each queue slot.
var SlotCosts = [QueueSize]int{1, 4, 7}

// MoveQueue is a rotating buffer of move options. Using a slot sends its kind to the back.
type MoveQueue [QueueSize]PieceKind

func (q MoveQueue) Kind(slot int) PieceKind {
	return q[slot]
}

// Rotate returns the queue after the kind at slot has been used.
func (q MoveQueue) Rotate(slot int) MoveQueue {
	var rotated MoveQueue
	n := 0
	for i, kind := range q {
		if i != slot {
			rotated[n] = kind
			n++
		}
	}
	rotated[QueueSize-1] = q[slot]
	return rotated
}

func SlotCost(slot int) int {
	return SlotCosts[slot]
}
