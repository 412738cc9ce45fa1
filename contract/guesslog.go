package contract

// Guess history bookkeeping. Both collections are hard-capped: an append
// past capacity aborts the whole transaction instead of evicting old
// entries, so storage growth per game is bounded and no attempt ever
// disappears silently.

const (
	maxGuessesPerPlayer = 10
	maxGuessesPerGame   = 1000
)

func playerGuessKey(id uint64, player string) string {
	return "g_" + UInt64ToString(id) + "_p_" + player
}
func guessCountKey(id uint64) string { return "g_" + UInt64ToString(id) + "_guesses" }
func guessKey(id uint64, n uint64) string {
	return "g_" + UInt64ToString(id) + "_guess_" + UInt64ToString(n)
}

// readPlayerGuesses returns the guessed values of one player in one game,
// oldest first. Empty for unknown (game, player) pairs.
func readPlayerGuesses(chain SDKInterface, id uint64, player string) []uint64 {
	ptr := chain.StateGetObject(playerGuessKey(id, player))
	if ptr == nil || *ptr == "" {
		return nil
	}
	r := &rd{chain: chain, b: []byte(*ptr)}
	count := int(r.u8())
	out := make([]uint64, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, r.u64())
	}
	return out
}

// appendPlayerGuess rewrites the player's history blob with the new value
// appended: 1-byte count plus 8 bytes per value.
func appendPlayerGuess(chain SDKInterface, id uint64, player string, prior []uint64, value uint64) {
	require(chain, len(prior) < maxGuessesPerPlayer, ErrTooManyGuesses, "player guess limit reached")

	out := make([]byte, 0, 1+8*(len(prior)+1))
	out = append(out, byte(len(prior)+1))
	for _, v := range prior {
		out = appendU64BE(out, v)
	}
	out = appendU64BE(out, value)
	chain.StateSetObject(playerGuessKey(id, player), string(out))
}

// readGuessLogCount returns 0 if missing.
func readGuessLogCount(chain SDKInterface, id uint64) uint64 {
	ptr := chain.StateGetObject(guessCountKey(id))
	if ptr == nil || *ptr == "" {
		return 0
	}
	var n uint64
	for i := 0; i < len(*ptr); i++ {
		n = n*10 + uint64((*ptr)[i]-'0')
	}
	return n
}

func writeGuessLogCount(chain SDKInterface, id uint64, n uint64) {
	chain.StateSetObject(guessCountKey(id), UInt64ToString(n))
}

// appendGuessLog stores attempt n (1-based) under its own key: the player
// with a length prefix, the guessed value, and a 4-byte height delta from
// game creation.
func appendGuessLog(chain SDKInterface, id uint64, n uint64, player string, value uint64, height uint64, createdAt uint64) {
	require(chain, n <= maxGuessesPerGame, ErrTooManyGuesses, "game guess limit reached")
	if height < createdAt {
		chain.Abort("attempt height before game creation")
	}

	out := make([]byte, 0, 2+len(player)+12)
	out = appendString16(chain, out, player)
	out = appendU64BE(out, value)
	out = appendU32BE(out, uint32(height-createdAt))
	chain.StateSetObject(guessKey(id, n), string(out))
	writeGuessLogCount(chain, id, n)
}

// readGuessLogEntry reconstructs attempt n: player, value, absolute height.
func readGuessLogEntry(chain SDKInterface, id uint64, n uint64, createdAt uint64) (player string, value uint64, height uint64) {
	ptr := chain.StateGetObject(guessKey(id, n))
	if ptr == nil || *ptr == "" {
		chain.Abort("guess " + UInt64ToString(n) + " missing")
	}
	r := &rd{chain: chain, b: []byte(*ptr)}
	player = r.str()
	value = r.u64()
	height = createdAt + uint64(r.u32())
	return
}
