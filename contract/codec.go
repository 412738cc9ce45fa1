package contract

import "numberhunt/sdk"

func gameMetaKey(id uint64) string  { return "g_" + UInt64ToString(id) + "_meta" }
func gameStateKey(id uint64) string { return "g_" + UInt64ToString(id) + "_state" }

const gameCountKey = "g_count"

// saveMetaBinary packs the parts of a game that never change after
// creation: creator, range, fee, asset, secret and creation height. The
// format is fixed-width integers plus length-prefix strings so it stays
// compact on-chain.
func saveMetaBinary(chain SDKInterface, g *Game) {
	out := make([]byte, 0, 64+len(g.Creator))

	out = appendString16(chain, out, g.Creator)
	out = appendU64BE(out, g.MinNumber)
	out = appendU64BE(out, g.MaxNumber)
	out = appendU64BE(out, g.EntryFee)
	out = appendString16(chain, out, g.Asset.String())
	out = appendU64BE(out, g.SecretNumber)
	out = appendU64BE(out, g.CreatedAt)

	chain.StateSetObject(gameMetaKey(g.ID), string(out))
}

// saveStateBinary writes the parts of a game that change during play:
// status, pool, guess count and the winner once decided.
func saveStateBinary(chain SDKInterface, g *Game) {
	out := make([]byte, 0, 32)

	out = append(out, byte(g.Status))
	out = appendU64BE(out, g.PrizePool)
	out = appendU64BE(out, g.GuessCount)
	if g.winner != nil {
		out = append(out, 1)
		out = appendString16(chain, out, *g.winner)
	} else {
		out = append(out, 0)
	}

	chain.StateSetObject(gameStateKey(g.ID), string(out))
}

// loadGame reconstructs a Game from its meta and state blobs.
// Pure lookup: the second return is false for an unknown id and nothing
// is written either way.
func loadGame(chain SDKInterface, id uint64) (*Game, bool) {
	metaPtr := chain.StateGetObject(gameMetaKey(id))
	if metaPtr == nil || *metaPtr == "" {
		return nil, false
	}

	r := &rd{chain: chain, b: []byte(*metaPtr)}
	g := &Game{ID: id}
	g.Creator = r.str()
	g.MinNumber = r.u64()
	g.MaxNumber = r.u64()
	g.EntryFee = r.u64()
	g.Asset = sdk.Asset(r.str())
	g.SecretNumber = r.u64()
	g.CreatedAt = r.u64()

	statePtr := chain.StateGetObject(gameStateKey(id))
	if statePtr == nil || *statePtr == "" {
		// meta without state means a half-written record; the host's
		// transactional storage rules this out, so treat it as corruption.
		chain.Abort("state missing for game " + UInt64ToString(id))
	}
	rs := &rd{chain: chain, b: []byte(*statePtr)}
	g.Status = GameStatus(rs.u8())
	g.PrizePool = rs.u64()
	g.GuessCount = rs.u64()
	if rs.u8() == 1 {
		w := rs.str()
		g.winner = &w
	}

	return g, true
}
