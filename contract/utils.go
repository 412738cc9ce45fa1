package contract

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// ---------- UInt/String Helpers ----------

func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// ---------- Parsing Helpers ----------

func nextField(s *string) string {
	i := strings.IndexByte(*s, '|')
	if i < 0 {
		f := *s
		*s = ""
		return f
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f
}

// parseU64Field parses a decimal payload field, aborting with 105 on
// anything that is not a plain digit string or does not fit in 64 bits.
func parseU64Field(chain SDKInterface, s string) uint64 {
	require(chain, len(s) > 0 && len(s) <= 20, ErrInvalidParams, "invalid number")
	var n uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		require(chain, c >= '0' && c <= '9', ErrInvalidParams, "invalid number")
		d := uint64(c - '0')
		require(chain, n <= (^uint64(0)-d)/10, ErrInvalidParams, "invalid number")
		n = n*10 + d
	}
	return n
}

func appendU64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[i:]...)
}

// ---------- Binary Helpers ----------

// rd is a binary reader utility over a byte slice.
type rd struct {
	chain SDKInterface
	b     []byte // raw buffer
	i     int    // current read index
}

func (r *rd) need(n int) {
	if r.i+n > len(r.b) {
		r.chain.Abort("decode overflow")
	}
}

func (r *rd) u8() byte {
	r.need(1)
	v := r.b[r.i]
	r.i++
	return v
}

func (r *rd) u32() uint32 {
	r.need(4)
	v := binary.BigEndian.Uint32(r.b[r.i : r.i+4])
	r.i += 4
	return v
}

// u64 reads a uint64 in big-endian format.
func (r *rd) u64() uint64 {
	r.need(8)
	v := binary.BigEndian.Uint64(r.b[r.i : r.i+8])
	r.i += 8
	return v
}

// str reads a string with a 2-byte big-endian length prefix.
func (r *rd) str() string {
	r.need(2)
	l := int(binary.BigEndian.Uint16(r.b[r.i : r.i+2]))
	r.i += 2
	r.need(l)
	v := string(r.b[r.i : r.i+l])
	r.i += l
	return v
}

func appendString16(chain SDKInterface, out []byte, s string) []byte {
	if len(s) > 65535 {
		chain.Abort("string too long")
	}
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(len(s)))
	out = append(out, tmp[:]...)
	return append(out, s...)
}

func appendU64BE(out []byte, v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return append(out, buf[:]...)
}

func appendU32BE(out []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(out, buf[:]...)
}

// ---------- Env Helpers ----------

func senderAddress(chain SDKInterface) string {
	ptr := chain.GetEnvKey("msg.sender")
	if ptr == nil || *ptr == "" {
		chain.Abort("msg.sender missing")
	}
	return *ptr
}

// blockHeight reads the current block height, the monotonic counter the
// host guarantees for ordering and randomness input.
func blockHeight(chain SDKInterface) uint64 {
	ptr := chain.GetEnvKey("block.height")
	if ptr == nil || *ptr == "" {
		chain.Abort("block.height missing")
	}
	var n uint64
	s := *ptr
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			chain.Abort("block.height malformed")
		}
		n = n*10 + uint64(s[i]-'0')
	}
	return n
}
