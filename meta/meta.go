// meta/meta.go
package meta

// DEPTH is the default minimax search depth in plies.
const DEPTH = 3

// GO_ROUTINES defines the number of goroutines evaluating root moves.
const GO_ROUTINES = 8

// MAX_TURNS caps the number of moves played in one game.
const MAX_TURNS = 300

// NUM_GAMES is the number of games played per experiment matchup.
const NUM_GAMES = 10

// PYTHON is the interpreter used to launch the game.
const PYTHON = "python"
