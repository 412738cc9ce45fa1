package contract

import (
	"crypto/sha256"
	"encoding/binary"
)

// RandomnessSource supplies the 64-bit seed used to place a game's secret
// number. It must be deterministic for a given chain context so the
// derivation can be audited after the fact.
type RandomnessSource interface {
	Seed(chain SDKInterface) uint64
}

// BlockHashSource hashes the most recently finalized block id and mixes in
// the current height. WARNING: the previous block id is public before the
// creating transaction is accepted, so anyone watching the chain can
// precompute the secret of a game created in the next block. Good enough
// for play money; swap in a commit-reveal or VRF backed source before
// anything of value rides on the pool.
type BlockHashSource struct{}

func (BlockHashSource) Seed(chain SDKInterface) uint64 {
	prev := chain.GetEnvKey("block.prev_id")
	if prev == nil || *prev == "" {
		chain.Abort("block.prev_id missing")
	}
	h := sha256.Sum256([]byte(*prev))
	return binary.BigEndian.Uint64(h[:8]) ^ blockHeight(chain)
}

// Randomness is the source used by game creation. Package-level so a
// stronger source can replace the default without touching the engine.
var Randomness RandomnessSource = BlockHashSource{}

// deriveSecret maps the seed uniformly onto [min, max]. min == max is a
// valid single-outcome range. The width overflows to zero only for the
// full uint64 domain, where the raw seed already is the answer.
func deriveSecret(chain SDKInterface, min, max uint64) uint64 {
	seed := Randomness.Seed(chain)
	width := max - min + 1
	if width == 0 {
		return seed
	}
	return min + seed%width
}
