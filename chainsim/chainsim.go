// Package chainsim is an in-process stand-in for the chain runtime the
// contract deploys to. It persists contract state and token balances in a
// bbolt database, executes every entry point as one serial read-write
// transaction (an abort rolls back state and fund movements together), and
// advances a height counter plus a prev-hash chain per accepted call.
//
// It exists for integration tests and the local playground; it implements
// the host contract the engine assumes, it is not a consensus node.
package chainsim

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/decred/slog"
	bolt "go.etcd.io/bbolt"

	"numberhunt/contract"
	"numberhunt/sdk"
)

var (
	bucketState    = []byte("state")
	bucketBalances = []byte("balances")
	bucketChain    = []byte("chain")

	keyHeight = []byte("height")
	keyPrevID = []byte("prev_id")
)

// custodyAccount holds funds drawn into the contract between guess and
// payout.
const custodyAccount = "contract"

const genesisID = "genesis"

// errAborted forces bbolt to roll the transaction back after a contract
// abort.
var errAborted = errors.New("chainsim: call aborted")

// CallError is an abort surfaced from the contract. Code carries the
// stable numeric error code when the abort message includes one.
type CallError struct {
	Code contract.ErrCode
	Msg  string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("contract abort (%d): %s", e.Code, e.Msg)
}

// Chain is a single-writer emulated ledger. All calls serialize on one
// mutex, matching the serial transaction processing the contract assumes.
type Chain struct {
	mu     sync.Mutex
	db     *bolt.DB
	log    slog.Logger
	height uint64
	prevID string
}

// Open opens (or creates) the emulated chain at path. A nil logger
// disables call tracing.
func Open(path string, log slog.Logger) (*Chain, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("chain db path is required")
	}
	if log == nil {
		log = slog.Disabled
	}

	db, err := bolt.Open(filepath.Clean(path), 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open chain db: %w", err)
	}

	c := &Chain{db: db, log: log, prevID: genesisID}
	if err := c.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketState, bucketBalances, bucketChain} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		cb := tx.Bucket(bucketChain)
		if v := cb.Get(keyHeight); v != nil {
			c.height = binary.BigEndian.Uint64(v)
		}
		if v := cb.Get(keyPrevID); v != nil {
			c.prevID = string(v)
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	c.log.Infof("chain open at height %d", c.height)
	return c, nil
}

func (c *Chain) Close() error { return c.db.Close() }

// Height returns the current block height.
func (c *Chain) Height() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height
}

// Fund credits an account, the emulator's faucet.
func (c *Chain) Fund(addr sdk.Address, asset sdk.Asset, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketBalances)
		key := balanceKey(addr.String(), asset)
		return putBalance(b, key, getBalance(b, key)+amount)
	})
}

// Balance reads an account balance.
func (c *Chain) Balance(addr sdk.Address, asset sdk.Asset) (uint64, error) {
	var out uint64
	err := c.db.View(func(tx *bolt.Tx) error {
		out = getBalance(tx.Bucket(bucketBalances), balanceKey(addr.String(), asset))
		return nil
	})
	return out, err
}

// Custody reads the funds currently held by the contract itself.
func (c *Chain) Custody(asset sdk.Asset) (uint64, error) {
	return c.Balance(custodyAccount, asset)
}

type entryFunc func(*string, contract.SDKInterface) *string

var entryPoints = map[string]entryFunc{
	"g_create":        contract.CreateGame,
	"g_guess":         contract.GuessNumber,
	"g_get":           contract.GetGameInfo,
	"g_winner":        contract.GetGameWinner,
	"g_guesscount":    contract.GetGuessCount,
	"g_pool":          contract.GetPrizePool,
	"g_total":         contract.GetTotalGames,
	"g_active":        contract.IsGameActive,
	"g_playerguesses": contract.GetPlayerGuesses,
	"g_attempt":       contract.GetGuessAttempt,
}

// queryEntries run read-only: no block is produced and any state write is
// rejected.
var queryEntries = map[string]bool{
	"g_get":           true,
	"g_winner":        true,
	"g_guesscount":    true,
	"g_pool":          true,
	"g_total":         true,
	"g_active":        true,
	"g_playerguesses": true,
	"g_attempt":       true,
}

// Call executes one entry point as sender. Mutating entries accepted into
// the chain produce a block; an abort rolls everything back and surfaces a
// *CallError.
func (c *Chain) Call(sender sdk.Address, entry string, payload string) (*string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fn, ok := entryPoints[entry]
	if !ok {
		return nil, fmt.Errorf("unknown entry point %q", entry)
	}
	if queryEntries[entry] {
		return c.query(sender, entry, fn, payload)
	}
	return c.execute(sender, entry, fn, payload)
}

func (c *Chain) execute(sender sdk.Address, entry string, fn entryFunc, payload string) (*string, error) {
	height := c.height + 1
	txid := blockID(c.prevID, height, string(sender), entry, payload)

	var res *string
	var abort *CallError
	err := c.db.Update(func(tx *bolt.Tx) error {
		host := &txSDK{
			tx:     tx,
			log:    c.log,
			sender: string(sender),
			txid:   txid,
			height: height,
			prevID: c.prevID,
		}
		res, abort = runGuarded(fn, payload, host)
		if abort != nil {
			return errAborted
		}
		cb := tx.Bucket(bucketChain)
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], height)
		if err := cb.Put(keyHeight, buf[:]); err != nil {
			return err
		}
		return cb.Put(keyPrevID, []byte(txid))
	})

	if abort != nil {
		c.log.Debugf("tx %s %s aborted: %s", entry, txid[:8], abort.Msg)
		return nil, abort
	}
	if err != nil {
		return nil, fmt.Errorf("execute %s: %w", entry, err)
	}

	c.height = height
	c.prevID = txid
	c.log.Debugf("tx %s accepted at height %d", entry, height)
	return res, nil
}

func (c *Chain) query(sender sdk.Address, entry string, fn entryFunc, payload string) (*string, error) {
	var res *string
	var abort *CallError
	err := c.db.View(func(tx *bolt.Tx) error {
		host := &txSDK{
			tx:       tx,
			log:      c.log,
			sender:   string(sender),
			txid:     "",
			height:   c.height,
			prevID:   c.prevID,
			readonly: true,
		}
		res, abort = runGuarded(fn, payload, host)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", entry, err)
	}
	if abort != nil {
		return nil, abort
	}
	return res, nil
}

// runGuarded invokes the entry point and converts an abort panic into a
// *CallError. Any other panic is a bug and propagates.
func runGuarded(fn entryFunc, payload string, host *txSDK) (res *string, abort *CallError) {
	defer func() {
		if r := recover(); r != nil {
			ab, ok := r.(contractAbort)
			if !ok {
				panic(r)
			}
			abort = parseCallError(ab.msg)
		}
	}()
	res = fn(&payload, host)
	return
}

// parseCallError extracts the "<code>: " prefix the contract puts on coded
// aborts; uncoded aborts keep code zero.
func parseCallError(msg string) *CallError {
	i := strings.Index(msg, ": ")
	if i > 0 {
		if code, err := strconv.ParseUint(msg[:i], 10, 16); err == nil {
			return &CallError{Code: contract.ErrCode(code), Msg: msg[i+2:]}
		}
	}
	return &CallError{Msg: msg}
}

func blockID(prevID string, height uint64, sender, entry, payload string) string {
	h := sha256.New()
	h.Write([]byte(prevID))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], height)
	h.Write(buf[:])
	h.Write([]byte(sender))
	h.Write([]byte(entry))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}

func balanceKey(addr string, asset sdk.Asset) []byte {
	return []byte(addr + "|" + asset.String())
}

func getBalance(b *bolt.Bucket, key []byte) uint64 {
	v := b.Get(key)
	if v == nil {
		return 0
	}
	return binary.BigEndian.Uint64(v)
}

func putBalance(b *bolt.Bucket, key []byte, amount uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], amount)
	return b.Put(key, buf[:])
}
