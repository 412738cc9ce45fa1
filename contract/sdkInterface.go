package contract

import "numberhunt/sdk"

// SDKInterface is the slice of the host chain the engine touches. Entry
// points receive it explicitly so the same logic runs under the deployed
// wasm bindings, the in-memory FakeSDK of the unit tests, and the chainsim
// emulator.
type SDKInterface interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	GetEnvKey(key string) *string
	// HiveDraw moves amount of asset from the caller into contract
	// custody. It aborts the transaction when the caller cannot cover
	// the amount; it never partially draws.
	HiveDraw(amount int64, asset sdk.Asset)
	// HiveTransfer moves amount of asset out of contract custody.
	HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset)
	Abort(msg string)
	Log(msg string)
}

// RealSDK is the production implementation that forwards to the host
// bindings in numberhunt/sdk.
type RealSDK struct{}

func (RealSDK) StateSetObject(key, value string)  { sdk.StateSetObject(key, value) }
func (RealSDK) StateGetObject(key string) *string { return sdk.StateGetObject(key) }
func (RealSDK) GetEnvKey(key string) *string      { return sdk.GetEnvKey(key) }
func (RealSDK) HiveDraw(amount int64, asset sdk.Asset) {
	sdk.HiveDraw(amount, asset)
}
func (RealSDK) HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset) {
	sdk.HiveTransfer(to, amount, asset)
}
func (RealSDK) Abort(msg string) { sdk.Abort(msg) }
func (RealSDK) Log(msg string)   { sdk.Log(msg) }
