package communication

import "errors"

var (
	ErrMalformedGrid   = errors.New("malformed grid")
	ErrMalformedStatus = errors.New("malformed status")
)

// Communicator exchanges lines of text with a running game.
type Communicator interface {
	// ReadLine returns the next non-blank line without its line ending.
	ReadLine() (string, error)
	// ReadTo consumes output up to and including suffix, typically a prompt.
	ReadTo(suffix string) (string, error)
	WriteLine(line string) error
}
