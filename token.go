package pando

import (
	"strconv"
	"sync/atomic"
)

// Token is the opaque identity of a node. It is the only key used by the
// state store, the region table and the mouse region manager. Tokens are
// minted once per node at construction and never reused.
type Token uint64

// NoToken is the zero Token. It never identifies a node.
const NoToken Token = 0

// tokenCounter is atomic only so that nodes may be constructed off the frame
// goroutine (e.g. while loading); the runtime itself is single-threaded.
var tokenCounter atomic.Uint64

// NewToken returns a Token that is unique for the lifetime of the process.
func NewToken() Token {
	return Token(tokenCounter.Add(1))
}

// String returns a short printable form used in logs and panics.
func (t Token) String() string {
	if t == NoToken {
		return "tok#none"
	}
	return "tok#" + strconv.FormatUint(uint64(t), 10)
}
