package contract

// ErrCode is a stable numeric error code. Codes are part of the public
// contract surface: abort messages carry them as a "<code>: <text>" prefix
// so callers can dispatch without parsing free-form text. Codes marked
// reserved are kept for wire compatibility and never emitted today.
type ErrCode uint16

const (
	ErrUnauthorized   ErrCode = 100 // reserved
	ErrGameNotFound   ErrCode = 101
	ErrGameAlreadyWon ErrCode = 102
	ErrInvalidGuess   ErrCode = 103
	ErrTransferFailed ErrCode = 104
	ErrInvalidParams  ErrCode = 105
	ErrGameExpired    ErrCode = 106 // reserved
	ErrAlreadyGuessed ErrCode = 107 // reserved
	ErrTooManyGuesses ErrCode = 108
)

// AbortMsg renders the canonical abort string for a coded failure.
func AbortMsg(code ErrCode, msg string) string {
	return UInt64ToString(uint64(code)) + ": " + msg
}

func fail(chain SDKInterface, code ErrCode, msg string) {
	chain.Abort(AbortMsg(code, msg))
}

// require aborts the whole transaction with a coded message unless cond
// holds. The host discards every prior effect of the call on abort.
func require(chain SDKInterface, cond bool, code ErrCode, msg string) {
	if !cond {
		fail(chain, code, msg)
	}
}
