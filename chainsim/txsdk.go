package chainsim

import (
	"github.com/decred/slog"
	bolt "go.etcd.io/bbolt"

	"numberhunt/contract"
	"numberhunt/sdk"
)

// contractAbort is the panic payload used to unwind an aborted call inside
// the surrounding bbolt transaction.
type contractAbort struct {
	msg string
}

// txSDK exposes one bbolt transaction to the contract as its host chain.
// State writes and balance movements share the transaction, so committing
// or rolling back is always all-or-nothing.
type txSDK struct {
	tx       *bolt.Tx
	log      slog.Logger
	sender   string
	txid     string
	height   uint64
	prevID   string
	readonly bool
}

var _ contract.SDKInterface = (*txSDK)(nil)

func (s *txSDK) StateSetObject(key, value string) {
	if s.readonly {
		s.Abort("read-only call attempted a state write")
	}
	if err := s.tx.Bucket(bucketState).Put([]byte(key), []byte(value)); err != nil {
		s.Abort("state write failed: " + err.Error())
	}
}

func (s *txSDK) StateGetObject(key string) *string {
	v := s.tx.Bucket(bucketState).Get([]byte(key))
	if v == nil {
		return nil
	}
	out := string(v)
	return &out
}

func (s *txSDK) GetEnvKey(key string) *string {
	var out string
	switch key {
	case "msg.sender":
		out = s.sender
	case "block.height":
		out = contract.UInt64ToString(s.height)
	case "block.prev_id":
		out = s.prevID
	case "tx.id":
		out = s.txid
	default:
		return nil
	}
	return &out
}

func (s *txSDK) HiveDraw(amount int64, asset sdk.Asset) {
	if s.readonly {
		s.Abort("read-only call attempted a draw")
	}
	b := s.tx.Bucket(bucketBalances)
	from := balanceKey(s.sender, asset)
	have := getBalance(b, from)
	if have < uint64(amount) {
		s.Abort(contract.AbortMsg(contract.ErrTransferFailed, "insufficient funds"))
	}
	if err := putBalance(b, from, have-uint64(amount)); err != nil {
		s.Abort("balance write failed: " + err.Error())
	}
	custody := balanceKey(custodyAccount, asset)
	if err := putBalance(b, custody, getBalance(b, custody)+uint64(amount)); err != nil {
		s.Abort("balance write failed: " + err.Error())
	}
}

func (s *txSDK) HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset) {
	if s.readonly {
		s.Abort("read-only call attempted a transfer")
	}
	b := s.tx.Bucket(bucketBalances)
	custody := balanceKey(custodyAccount, asset)
	have := getBalance(b, custody)
	if have < uint64(amount) {
		s.Abort(contract.AbortMsg(contract.ErrTransferFailed, "custody shortfall"))
	}
	if err := putBalance(b, custody, have-uint64(amount)); err != nil {
		s.Abort("balance write failed: " + err.Error())
	}
	dst := balanceKey(to.String(), asset)
	if err := putBalance(b, dst, getBalance(b, dst)+uint64(amount)); err != nil {
		s.Abort("balance write failed: " + err.Error())
	}
}

func (s *txSDK) Abort(msg string) {
	panic(contractAbort{msg: msg})
}

func (s *txSDK) Log(msg string) {
	s.log.Tracef("contract: %s", msg)
}
