package contract

import (
	"fmt"
	"strings"
	"testing"

	"numberhunt/sdk"
)

// FakeSDK is an in-memory chain for unit tests: flat KV state, env
// lookups, token balances with contract custody, and panic-based aborts.
type FakeSDK struct {
	state    map[string]string
	env      map[string]string
	balances map[string]uint64 // "addr|asset"
	custody  map[string]uint64 // asset -> amount held by the contract
	logs     []string
	aborted  bool
	abortMsg string
}

func NewFakeSDK(sender string, txid string) *FakeSDK {
	return &FakeSDK{
		state: make(map[string]string),
		env: map[string]string{
			"msg.sender":    sender,
			"tx.id":         txid,
			"block.height":  "1",
			"block.prev_id": "genesis",
		},
		balances: make(map[string]uint64),
		custody:  make(map[string]uint64),
	}
}

func (f *FakeSDK) SetSender(addr string) { f.env["msg.sender"] = addr }

func (f *FakeSDK) SetBlock(height uint64, prevID string) {
	f.env["block.height"] = UInt64ToString(height)
	f.env["block.prev_id"] = prevID
}

func (f *FakeSDK) Fund(addr string, asset sdk.Asset, amount uint64) {
	f.balances[addr+"|"+asset.String()] += amount
}

func (f *FakeSDK) Balance(addr string, asset sdk.Asset) uint64 {
	return f.balances[addr+"|"+asset.String()]
}

func (f *FakeSDK) Custody(asset sdk.Asset) uint64 {
	return f.custody[asset.String()]
}

func (f *FakeSDK) StateSetObject(key, value string) { f.state[key] = value }

func (f *FakeSDK) StateGetObject(key string) *string {
	val, ok := f.state[key]
	if !ok {
		return nil
	}
	return &val
}

func (f *FakeSDK) GetEnvKey(key string) *string {
	val, ok := f.env[key]
	if !ok {
		return nil
	}
	return &val
}

func (f *FakeSDK) HiveDraw(amount int64, asset sdk.Asset) {
	key := f.env["msg.sender"] + "|" + asset.String()
	if f.balances[key] < uint64(amount) {
		f.Abort(AbortMsg(ErrTransferFailed, "insufficient funds"))
	}
	f.balances[key] -= uint64(amount)
	f.custody[asset.String()] += uint64(amount)
}

func (f *FakeSDK) HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset) {
	if f.custody[asset.String()] < uint64(amount) {
		f.Abort(AbortMsg(ErrTransferFailed, "custody shortfall"))
	}
	f.custody[asset.String()] -= uint64(amount)
	f.balances[to.String()+"|"+asset.String()] += uint64(amount)
}

func (f *FakeSDK) Abort(msg string) {
	f.aborted = true
	f.abortMsg = msg
	panic(fmt.Sprintf("Abort called: %s", msg))
}

func (f *FakeSDK) Log(msg string) { f.logs = append(f.logs, msg) }

// expectAbort checks from a deferred call that the entry point aborted
// with the given coded message.
func expectAbort(t *testing.T, chain *FakeSDK, code ErrCode, expectedMsg string) {
	t.Helper()
	if r := recover(); r == nil {
		t.Errorf("expected Abort panic, but function did not panic")
	} else {
		if !chain.aborted {
			t.Errorf("expected chain.Abort to be called, but it wasn't")
		}
		want := AbortMsg(code, expectedMsg)
		if chain.abortMsg != want {
			t.Errorf("expected abort message %q, got %q", want, chain.abortMsg)
		}
	}
}

// mustAbort runs fn and asserts it aborts with the coded message, letting
// the test keep asserting on untouched state afterwards.
func mustAbort(t *testing.T, chain *FakeSDK, code ErrCode, expectedMsg string, fn func()) {
	t.Helper()
	defer expectAbort(t, chain, code, expectedMsg)
	fn()
}

// fixedSeed pins the secret derivation for tests that need to know where
// the secret landed.
type fixedSeed uint64

func (s fixedSeed) Seed(chain SDKInterface) uint64 { return uint64(s) }

func withSeed(t *testing.T, seed uint64) {
	t.Helper()
	prev := Randomness
	Randomness = fixedSeed(seed)
	t.Cleanup(func() { Randomness = prev })
}

// eventLogged reports whether an emitted event log contains every given
// fragment.
func eventLogged(chain *FakeSDK, fragments ...string) bool {
	for _, entry := range chain.logs {
		all := true
		for _, frag := range fragments {
			if !strings.Contains(entry, frag) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}
