// Package gameid mints the opaque identifiers that bind cards and moves to
// the game instance that produced them.
package gameid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID: 128 bits in 5-bit groups, two leading pad bits.
const Length = 26

// ID identifies one game instance. The zero value belongs to no game.
type ID string

// New returns a fresh, time-ordered ID backed by a UUIDv7.
func New() ID {
	u, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does.
		u = uuid.New()
	}
	return FromUUID(u)
}

// FromUUID encodes u as an ID.
func FromUUID(u uuid.UUID) ID {
	return ID(encodeBase32(u))
}

// String returns the encoded ID
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether id is the zero ID.
func (id ID) IsZero() bool {
	return id == ""
}

// encodeBase32 writes the 128 bits of u, most significant first, behind two
// zero pad bits so the first character is always 0-7.
func encodeBase32(u uuid.UUID) string {
	var out [Length]byte
	for i := range out {
		var v byte
		for b := range 5 {
			pos := i*5 + b - 2
			v <<= 1
			if pos >= 0 && u[pos/8]&(0x80>>(pos%8)) != 0 {
				v |= 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out[:])
}

// Validate checks if an ID is well formed (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
