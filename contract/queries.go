package contract

import "strings"

// Read-only surface. None of these charge a fee or write state.
//
// Lookup contract is uneven on purpose, mirroring the original game:
// g_winner, g_guesscount, g_pool and g_playerguesses answer an unknown id
// with an absent value, indistinguishable from "known but empty", while
// g_active aborts with 101 for the same missing game.

// GetGameInfo serializes the full record, or absent for an unknown id:
// id|creator|min|max|fee|asset|pool|count|status|winner|createdAt|secret
// The winner field is empty while undecided; the secret is only revealed
// once the game is won.
func GetGameInfo(payload *string, chain SDKInterface) *string {
	g, found := loadGame(chain, queryId(chain, payload))
	if !found {
		return nil
	}

	out := make([]byte, 0, 96+len(g.Creator))
	out = appendU64(out, g.ID)
	out = append(out, '|')
	out = append(out, g.Creator...)
	out = append(out, '|')
	out = appendU64(out, g.MinNumber)
	out = append(out, '|')
	out = appendU64(out, g.MaxNumber)
	out = append(out, '|')
	out = appendU64(out, g.EntryFee)
	out = append(out, '|')
	out = append(out, g.Asset.String()...)
	out = append(out, '|')
	out = appendU64(out, g.PrizePool)
	out = append(out, '|')
	out = appendU64(out, g.GuessCount)
	out = append(out, '|')
	out = appendU64(out, uint64(g.Status))
	out = append(out, '|')
	if w, ok := g.Winner(); ok {
		out = append(out, w...)
	}
	out = append(out, '|')
	out = appendU64(out, g.CreatedAt)
	out = append(out, '|')
	if g.Status == StatusWon {
		out = appendU64(out, g.SecretNumber)
	}

	s := string(out)
	return &s
}

// GetGameWinner returns the deciding account, or absent while the game is
// undecided or unknown.
func GetGameWinner(payload *string, chain SDKInterface) *string {
	g, found := loadGame(chain, queryId(chain, payload))
	if !found {
		return nil
	}
	w, ok := g.Winner()
	if !ok {
		return nil
	}
	return &w
}

// GetGuessCount returns the total number of recorded attempts, absent for
// an unknown id.
func GetGuessCount(payload *string, chain SDKInterface) *string {
	g, found := loadGame(chain, queryId(chain, payload))
	if !found {
		return nil
	}
	s := UInt64ToString(g.GuessCount)
	return &s
}

// GetPrizePool returns the custodied pool, absent for an unknown id.
func GetPrizePool(payload *string, chain SDKInterface) *string {
	g, found := loadGame(chain, queryId(chain, payload))
	if !found {
		return nil
	}
	s := UInt64ToString(g.PrizePool)
	return &s
}

// GetTotalGames returns the count of successful creations. Takes no
// payload.
func GetTotalGames(payload *string, chain SDKInterface) *string {
	s := UInt64ToString(getGameCount(chain))
	return &s
}

// IsGameActive returns "1" while the game accepts guesses, "0" once won.
// Unlike the other lookups it aborts with 101 for an unknown id.
func IsGameActive(payload *string, chain SDKInterface) *string {
	g, found := loadGame(chain, queryId(chain, payload))
	if !found {
		fail(chain, ErrGameNotFound, "game not found")
	}
	s := "0"
	if g.Status == StatusActive {
		s = "1"
	}
	return &s
}

// GetPlayerGuesses returns one player's guessed values for a game as a
// pipe-separated list, oldest first. Payload is "gameId|player". Empty for
// a player (or game) with no recorded attempts.
func GetPlayerGuesses(payload *string, chain SDKInterface) *string {
	if payload == nil {
		fail(chain, ErrInvalidParams, "payload missing")
	}
	in := *payload
	gameId := parseU64Field(chain, nextField(&in))
	player := in
	require(chain, player != "", ErrInvalidParams, "player missing")
	require(chain, !strings.Contains(player, "|"), ErrInvalidParams, "too many arguments")

	values := readPlayerGuesses(chain, gameId, player)
	out := make([]byte, 0, 8*len(values))
	for i, v := range values {
		if i > 0 {
			out = append(out, '|')
		}
		out = appendU64(out, v)
	}
	s := string(out)
	return &s
}

// GetGuessAttempt returns one entry of a game's guess log as
// "player|value|height". Payload is "gameId|n" with n 1-based. Absent for
// an unknown game or an index past the recorded count.
func GetGuessAttempt(payload *string, chain SDKInterface) *string {
	if payload == nil {
		fail(chain, ErrInvalidParams, "payload missing")
	}
	in := *payload
	gameId := parseU64Field(chain, nextField(&in))
	n := parseU64Field(chain, nextField(&in))
	require(chain, in == "", ErrInvalidParams, "too many arguments")

	g, found := loadGame(chain, gameId)
	if !found {
		return nil
	}
	if n == 0 || n > readGuessLogCount(chain, gameId) {
		return nil
	}

	player, value, height := readGuessLogEntry(chain, gameId, n, g.CreatedAt)
	out := make([]byte, 0, len(player)+24)
	out = append(out, player...)
	out = append(out, '|')
	out = appendU64(out, value)
	out = append(out, '|')
	out = appendU64(out, height)
	s := string(out)
	return &s
}

func queryId(chain SDKInterface, payload *string) uint64 {
	if payload == nil {
		fail(chain, ErrInvalidParams, "payload missing")
	}
	in := *payload
	id := parseU64Field(chain, nextField(&in))
	require(chain, in == "", ErrInvalidParams, "too many arguments")
	return id
}
