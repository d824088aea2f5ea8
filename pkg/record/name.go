package record

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

const (
	// Capacity is the size of the name buffer, terminator included.
	Capacity = 100
	// MaxNameLen is the longest name that can be stored.
	MaxNameLen = Capacity - 1
)

// Name is a fixed-capacity, always-terminated name buffer.
type Name struct {
	buf [Capacity]byte
}

// NewName builds a Name from s, truncating to MaxNameLen bytes.
func NewName(s string) Name {
	var n Name

	limit := len(s)
	if i := strings.IndexByte(s, 0); i >= 0 {
		limit = i
	}
	if limit > MaxNameLen {
		limit = MaxNameLen
		// drop a trailing multi-byte sequence the cut left incomplete
		for i := limit - 1; i >= 0 && i >= limit-(utf8.UTFMax-1); i-- {
			if utf8.RuneStart(s[i]) {
				if !utf8.FullRuneInString(s[i:limit]) {
					limit = i
				}
				break
			}
		}
	}

	copy(n.buf[:], s[:limit])
	n.buf[Capacity-1] = 0
	return n
}

// String returns the stored name without the terminator.
func (n Name) String() string {
	return string(n.buf[:n.Len()])
}

// Len returns the number of stored bytes before the terminator.
func (n Name) Len() int {
	// buf[Capacity-1] is always 0, so IndexByte never returns -1
	return bytes.IndexByte(n.buf[:], 0)
}

// Bytes returns a copy of the whole buffer, terminator and padding included.
func (n Name) Bytes() []byte {
	out := make([]byte, Capacity)
	copy(out, n.buf[:])
	return out
}

// IsEmpty reports whether no bytes are stored.
func (n Name) IsEmpty() bool {
	return n.buf[0] == 0
}
