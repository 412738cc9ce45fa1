package contract

import "encoding/json"

// Event represents the common structure for all emitted events.
// Each event has a type and a set of key/value attributes.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// emitEvent constructs an Event with the given type and attributes and
// logs it as JSON for off-chain indexers.
func emitEvent(chain SDKInterface, eventType string, attributes map[string]string) {
	b, err := json.Marshal(Event{Type: eventType, Attributes: attributes})
	if err != nil {
		chain.Abort("failed to marshal " + eventType + " event")
	}
	chain.Log(string(b))
}

// EmitGameCreated emits an event when a new game is opened.
func EmitGameCreated(chain SDKInterface, g *Game) {
	emitEvent(chain, "gameCreated", map[string]string{
		"id":    UInt64ToString(g.ID),
		"by":    g.Creator,
		"min":   UInt64ToString(g.MinNumber),
		"max":   UInt64ToString(g.MaxNumber),
		"fee":   UInt64ToString(g.EntryFee),
		"asset": g.Asset.String(),
	})
}

// EmitGuessMade emits an event for every recorded attempt.
func EmitGuessMade(chain SDKInterface, gameId uint64, player string, number uint64, hit bool) {
	hitStr := "0"
	if hit {
		hitStr = "1"
	}
	emitEvent(chain, "guessMade", map[string]string{
		"id":     UInt64ToString(gameId),
		"by":     player,
		"number": UInt64ToString(number),
		"hit":    hitStr,
	})
}

// EmitGameWon emits the win notification with the full paid-out pool.
func EmitGameWon(chain SDKInterface, gameId uint64, winner string, payout uint64) {
	emitEvent(chain, "gameWon", map[string]string{
		"id":     UInt64ToString(gameId),
		"winner": winner,
		"payout": UInt64ToString(payout),
	})
}
