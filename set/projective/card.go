// Package projective implements the projective Set variant: every card is a
// non-empty subset of six colours, and three cards form a set when each
// colour appears an even number of times among them.
package projective

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card encoding is empty or out of range.
var ErrInvalidCard = errors.New("projective: invalid card")

// Colour is one of the six attributes a card may carry.
type Colour uint8

const (
	Red Colour = iota
	Orange
	Yellow
	Green
	Blue
	Purple
)

// NumColours is the size of the attribute universe.
const NumColours = 6

// DeckSize is the number of distinct cards, 2^6 - 1.
const DeckSize = 1<<NumColours - 1

const colourCodes = "ROYGBP"

func (c Colour) bit() uint8 {
	return 1 << (NumColours - 1 - c)
}

func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Purple:
		return "purple"
	}
	return "unknown"
}

// Card holds its colours as a 6-bit mask, red in the high bit (32) and
// purple in the low bit (1). The zero value is not a valid card.
type Card uint8

// FromInt creates a card from its mask encoding, 1 through 63.
func FromInt(i int) (Card, error) {
	if i <= 0 || i > DeckSize {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCard, i)
	}
	return Card(i), nil
}

// New creates a card carrying the given colours.
func New(colours ...Colour) (Card, error) {
	var mask uint8
	for _, c := range colours {
		if c >= NumColours {
			return 0, fmt.Errorf("%w: colour %d", ErrInvalidCard, c)
		}
		mask |= c.bit()
	}
	if mask == 0 {
		return 0, fmt.Errorf("%w: no colours", ErrInvalidCard)
	}
	return Card(mask), nil
}

// Int returns the mask encoding of the card.
func (c Card) Int() int {
	return int(c)
}

// Index returns the card's position in the canonical deck (0-62).
func (c Card) Index() int {
	return int(c) - 1
}

// Has reports whether the card carries colour col.
func (c Card) Has(col Colour) bool {
	return col < NumColours && uint8(c)&col.bit() != 0
}

// Colours lists the card's colours in attribute order.
func (c Card) Colours() []Colour {
	var out []Colour
	for col := Red; col <= Purple; col++ {
		if c.Has(col) {
			out = append(out, col)
		}
	}
	return out
}

// String renders one character per colour, '.' when absent: "R.Y..P".
func (c Card) String() string {
	var b strings.Builder
	for col := Red; col <= Purple; col++ {
		if c.Has(col) {
			b.WriteByte(colourCodes[col])
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// ParseCard parses the String form back into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != NumColours {
		return 0, fmt.Errorf("%w: %q must be %d characters", ErrInvalidCard, s, NumColours)
	}
	var colours []Colour
	for i := 0; i < NumColours; i++ {
		switch ch := s[i]; {
		case ch == '.':
		case ch == colourCodes[i] || ch == colourCodes[i]+('a'-'A'):
			colours = append(colours, Colour(i))
		default:
			return 0, fmt.Errorf("%w: unexpected %c at position %d", ErrInvalidCard, ch, i)
		}
	}
	return New(colours...)
}
