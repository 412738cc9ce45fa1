package sdk

// Host bindings. On a deployed contract these bodies are replaced by the
// generated wasm imports of the chain toolchain; off-chain callers never
// reach them because everything in the contract package goes through
// SDKInterface and tests inject their own implementation.

func StateSetObject(key, value string) {
	panic("sdk: host binding not linked")
}

func StateGetObject(key string) *string {
	panic("sdk: host binding not linked")
}

// GetEnvKey returns a single env value ("msg.sender", "block.height",
// "block.prev_id", "tx.id") or nil when the host does not provide it.
func GetEnvKey(key string) *string {
	panic("sdk: host binding not linked")
}

// HiveDraw moves amount of asset from the transaction sender into the
// contract account. The host aborts the transaction when the sender's
// balance or allowance does not cover the amount.
func HiveDraw(amount int64, asset Asset) {
	panic("sdk: host binding not linked")
}

// HiveTransfer moves amount of asset from the contract account to the
// given address.
func HiveTransfer(to Address, amount int64, asset Asset) {
	panic("sdk: host binding not linked")
}

// Abort terminates the current call; the host discards every state write
// and balance movement of the transaction.
func Abort(msg string) {
	panic("sdk: host binding not linked")
}

func Log(msg string) {
	panic("sdk: host binding not linked")
}
