// Package idgen supplies the identifier generators injected into the
// analyzer. Block ids are opaque; only uniqueness within a tree matters.
package idgen

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Func returns a fresh identifier on every call.
type Func func() string

// Child derives a child id from its parent's id.
func Child(parent string, next Func) string {
	return parent + "/" + next()
}

// UUID returns random version 4 UUIDs.
func UUID() Func {
	return uuid.NewString
}

// Sequence returns prefix-1, prefix-2, ... The counter is private to the
// returned Func, so two sequences with the same prefix repeat each other.
func Sequence(prefix string) Func {
	var n atomic.Uint64
	return func() string {
		return prefix + "-" + strconv.FormatUint(n.Add(1), 10)
	}
}

// ULID returns 26-character Crockford Base32 ULIDs: a 48-bit millisecond
// timestamp followed by 80 random bits, monotonic within one millisecond.
func ULID() Func {
	g := &ulidGen{}
	return g.next
}

// ByName resolves a configured scheme: "ulid", "uuid" or "sequence".
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ulid":
		return ULID(), nil
	case "uuid":
		return UUID(), nil
	case "sequence", "seq":
		return Sequence("b"), nil
	}
	return nil, fmt.Errorf("unknown id scheme %q", name)
}

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

type ulidGen struct {
	mu      sync.Mutex
	lastTS  uint64
	lastSeq uint16
}

func (g *ulidGen) next() string {
	g.mu.Lock()
	ts := uint64(time.Now().UnixMilli())
	if ts == g.lastTS {
		g.lastSeq++
	} else {
		g.lastTS = ts
		g.lastSeq = 0
	}
	seq := g.lastSeq
	g.mu.Unlock()

	var b [16]byte
	b[0] = byte(ts >> 40)
	b[1] = byte(ts >> 32)
	b[2] = byte(ts >> 24)
	b[3] = byte(ts >> 16)
	b[4] = byte(ts >> 8)
	b[5] = byte(ts)
	rand.Read(b[6:])
	// Sequence in bytes 6-7 keeps ids unique within the same millisecond.
	binary.BigEndian.PutUint16(b[6:8], seq)

	return encodeULID(b)
}

// encodeULID writes 128 bits as 26 base32 digits, most significant first.
// The first digit only carries the top three bits.
func encodeULID(b [16]byte) string {
	var out [26]byte
	for i := range out {
		out[i] = crockford[quintet(b, (25-i)*5)]
	}
	return string(out[:])
}

// quintet extracts the five bits starting at bit lsb (0 = least significant).
func quintet(b [16]byte, lsb int) byte {
	var v byte
	for k := 0; k < 5; k++ {
		pos := lsb + k
		if pos >= 128 {
			break
		}
		if b[15-pos/8]>>(pos%8)&1 == 1 {
			v |= 1 << k
		}
	}
	return v
}
