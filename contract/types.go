package contract

import "numberhunt/sdk"

// GameStatus indicates the current state of a game in lifecycle.
type GameStatus uint8

const (
	// StatusActive means the game accepts guesses.
	StatusActive GameStatus = 1
	// StatusWon means the secret was hit, the pool paid out and the
	// record frozen. There is no transition out of this state.
	StatusWon GameStatus = 2
)

// Game is the core runtime struct (not persisted directly).
// Creator, range, fee, asset, secret and CreatedAt never change after
// creation; pool, count, winner and status are only touched by the guess
// entry point.
type Game struct {
	ID           uint64
	Creator      string
	MinNumber    uint64
	MaxNumber    uint64
	EntryFee     uint64
	Asset        sdk.Asset
	SecretNumber uint64
	PrizePool    uint64
	GuessCount   uint64
	Status       GameStatus
	CreatedAt    uint64 // block height when the game was created

	winner *string
}

// Winner returns the deciding account once the game is won.
// The second return is false while no winner is decided.
func (g *Game) Winner() (string, bool) {
	if g.winner == nil {
		return "", false
	}
	return *g.winner, true
}

func (g *Game) setWinner(addr string) {
	g.winner = &addr
}
