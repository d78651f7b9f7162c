package game

// turnState is a step in the state machine that resolves one player's turn.
// A turn moves through the zones in order until it reaches turnDone.
type turnState int

const (
	tryHand turnState = iota
	trySeen
	tryUnseen
	turnDone
	gameOver
)
