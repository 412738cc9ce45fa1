package contract

import "numberhunt/sdk"

// GuessNumber processes one paid attempt at a game's secret. Payload is
// "gameId|number". Returns "1" when the guess hits and the pool was paid
// out, "0" when the game continues. Every failure aborts the transaction,
// so a rejected attempt charges nothing and records nothing.
func GuessNumber(payload *string, chain SDKInterface) *string {
	if payload == nil {
		fail(chain, ErrInvalidParams, "payload missing")
	}
	in := *payload
	gameId := parseU64Field(chain, nextField(&in))
	number := parseU64Field(chain, nextField(&in))
	require(chain, in == "", ErrInvalidParams, "too many arguments")

	sender := senderAddress(chain)
	g, found := loadGame(chain, gameId)
	if !found {
		fail(chain, ErrGameNotFound, "game not found")
	}
	require(chain, g.Status == StatusActive, ErrGameAlreadyWon, "game already won")
	require(chain, number >= g.MinNumber && number <= g.MaxNumber,
		ErrInvalidGuess, "guess outside game range")

	// Capacity is checked against the stored counts before the fee draw,
	// so a full history never leaves the caller's fee in custody even on
	// a host without nested rollback.
	prior := readPlayerGuesses(chain, gameId, sender)
	require(chain, len(prior) < maxGuessesPerPlayer, ErrTooManyGuesses, "player guess limit reached")
	logCount := readGuessLogCount(chain, gameId)
	require(chain, logCount < maxGuessesPerGame, ErrTooManyGuesses, "game guess limit reached")

	if g.EntryFee > 0 {
		// The host aborts with a 104-coded message when the caller
		// cannot cover the fee; nothing below runs in that case.
		chain.HiveDraw(int64(g.EntryFee), g.Asset)
	}

	height := blockHeight(chain)
	appendPlayerGuess(chain, gameId, sender, prior, number)
	appendGuessLog(chain, gameId, logCount+1, sender, number, height, g.CreatedAt)

	hit := number == g.SecretNumber
	g.GuessCount++
	EmitGuessMade(chain, g.ID, sender, number, hit)

	if hit {
		settlePool(chain, g, sender)
		ret := "1"
		return &ret
	}

	g.PrizePool += g.EntryFee
	saveStateBinary(chain, g)
	ret := "0"
	return &ret
}

// settlePool pays the accumulated pool plus the winning fee to the caller
// and freezes the record. Pool reset, winner and the Active→Won transition
// land in the same transaction as the transfer, so no observer can ever
// see a Won game with a nonzero pool, and the transition firing at most
// once makes the payout exactly-once.
func settlePool(chain SDKInterface, g *Game, winner string) {
	finalPool := g.PrizePool + g.EntryFee
	if finalPool > 0 {
		chain.HiveTransfer(sdk.Address(winner), int64(finalPool), g.Asset)
	}
	g.PrizePool = 0
	g.setWinner(winner)
	g.Status = StatusWon
	saveStateBinary(chain, g)
	EmitGameWon(chain, g.ID, winner, finalPool)
}
