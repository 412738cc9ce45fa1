package contract

import "numberhunt/sdk"

//
// Creation of a new guessing game.
//

// getGameCount retrieves the number of created games so far. New ids are
// assigned from it, so the first game is id 0 and ids strictly follow the
// acceptance order of the creating transactions.
func getGameCount(chain SDKInterface) uint64 {
	ptr := chain.StateGetObject(gameCountKey)
	if ptr == nil || *ptr == "" {
		return 0
	}
	var n uint64
	for i := 0; i < len(*ptr); i++ {
		n = n*10 + uint64((*ptr)[i]-'0')
	}
	return n
}

func setGameCount(chain SDKInterface, n uint64) {
	chain.StateSetObject(gameCountKey, UInt64ToString(n))
}

// parseCreateArgs splits the raw payload "min|max|fee[|asset]".
// Rejects bad arguments early so no game is created with odd state.
func parseCreateArgs(chain SDKInterface, payload *string) (min, max, fee uint64, asset sdk.Asset) {
	if payload == nil {
		fail(chain, ErrInvalidParams, "payload missing")
	}
	in := *payload
	min = parseU64Field(chain, nextField(&in))
	max = parseU64Field(chain, nextField(&in))
	fee = parseU64Field(chain, nextField(&in))

	asset = sdk.AssetHive
	if in != "" {
		sym := nextField(&in)
		require(chain, in == "", ErrInvalidParams, "too many arguments")
		require(chain, sym == sdk.AssetHive.String() || sym == sdk.AssetHbd.String(),
			ErrInvalidParams, "invalid asset")
		asset = sdk.Asset(sym)
	}
	return
}

// CreateGame opens a new game over [min, max] with the given entry fee.
// min == max is allowed and yields a deterministic single-outcome game.
// Returns the assigned id as a decimal string.
func CreateGame(payload *string, chain SDKInterface) *string {
	min, max, fee, asset := parseCreateArgs(chain, payload)
	require(chain, min <= max, ErrInvalidParams, "min greater than max")

	sender := senderAddress(chain)
	id := getGameCount(chain)
	height := blockHeight(chain)

	g := &Game{
		ID:           id,
		Creator:      sender,
		MinNumber:    min,
		MaxNumber:    max,
		EntryFee:     fee,
		Asset:        asset,
		SecretNumber: deriveSecret(chain, min, max),
		PrizePool:    0,
		GuessCount:   0,
		Status:       StatusActive,
		CreatedAt:    height,
	}

	saveMetaBinary(chain, g)
	saveStateBinary(chain, g)
	setGameCount(chain, id+1)
	EmitGameCreated(chain, g)

	ret := UInt64ToString(id)
	return &ret
}
