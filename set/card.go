package set

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card index or code is out of range.
var ErrInvalidCard = errors.New("set: invalid card")

// Number of symbols on a card
type Number uint8

const (
	One Number = iota
	Two
	Three
)

// Shape of the symbols
type Shape uint8

const (
	Oval Shape = iota
	Wave
	Diamond
)

// Shading of the symbols
type Shading uint8

const (
	Empty Shading = iota
	Half
	Full
)

// Colour of the symbols
type Colour uint8

const (
	Red Colour = iota
	Green
	Purple
)

// Values per attribute and size of the classic universe.
const (
	Values    = 3
	DeckSize  = Values * Values * Values * Values
	numberPow = 27
	shapePow  = 9
	shadePow  = 3
)

// Card is a classic Set card packed as a base-3 index:
// number*27 + shape*9 + shading*3 + colour. Cards compare with ==.
type Card uint8

// NewCard creates a card from its four attributes
func NewCard(n Number, s Shape, sh Shading, c Colour) Card {
	return Card(uint8(n)%Values*numberPow + uint8(s)%Values*shapePow + uint8(sh)%Values*shadePow + uint8(c)%Values)
}

// CardFromIndex returns the card at position i of the canonical deck.
func CardFromIndex(i int) (Card, error) {
	if i < 0 || i >= DeckSize {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidCard, i)
	}
	return Card(i), nil
}

// Index returns the card's position in the canonical deck (0-80)
func (c Card) Index() int {
	return int(c)
}

func (c Card) Number() Number   { return Number(uint8(c) / numberPow) }
func (c Card) Shape() Shape     { return Shape(uint8(c) / shapePow % Values) }
func (c Card) Shading() Shading { return Shading(uint8(c) / shadePow % Values) }
func (c Card) Colour() Colour   { return Colour(uint8(c) % Values) }

// attrs returns the attribute values in encoding order.
func (c Card) attrs() [4]uint8 {
	return [4]uint8{uint8(c.Number()), uint8(c.Shape()), uint8(c.Shading()), uint8(c.Colour())}
}

func fromAttrs(a [4]uint8) Card {
	return NewCard(Number(a[0]), Shape(a[1]), Shading(a[2]), Colour(a[3]))
}

const (
	numberCodes  = "123"
	colourCodes  = "RGP"
	shadingCodes = "EHF"
	shapeCodes   = "OWD"
)

// String returns a 4-character code: number, colour, shading, shape
// (e.g. "2GHW" is two green half-shaded waves).
func (c Card) String() string {
	if int(c) >= DeckSize {
		return "????"
	}
	return string([]byte{
		numberCodes[c.Number()],
		colourCodes[c.Colour()],
		shadingCodes[c.Shading()],
		shapeCodes[c.Shape()],
	})
}

func (n Number) String() string {
	switch n {
	case One:
		return "one"
	case Two:
		return "two"
	case Three:
		return "three"
	}
	return "unknown"
}

func (s Shape) String() string {
	switch s {
	case Oval:
		return "oval"
	case Wave:
		return "wave"
	case Diamond:
		return "diamond"
	}
	return "unknown"
}

func (s Shading) String() string {
	switch s {
	case Empty:
		return "empty"
	case Half:
		return "half"
	case Full:
		return "full"
	}
	return "unknown"
}

func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Purple:
		return "purple"
	}
	return "unknown"
}

// ParseCard parses a code like "2GHW" into a Card. Letters are case-insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("%w: %q must be 4 characters", ErrInvalidCard, s)
	}
	up := strings.ToUpper(s)

	n := strings.IndexByte(numberCodes, up[0])
	col := strings.IndexByte(colourCodes, up[1])
	sh := strings.IndexByte(shadingCodes, up[2])
	shp := strings.IndexByte(shapeCodes, up[3])
	switch {
	case n < 0:
		return 0, fmt.Errorf("%w: invalid number %c", ErrInvalidCard, s[0])
	case col < 0:
		return 0, fmt.Errorf("%w: invalid colour %c", ErrInvalidCard, s[1])
	case sh < 0:
		return 0, fmt.Errorf("%w: invalid shading %c", ErrInvalidCard, s[2])
	case shp < 0:
		return 0, fmt.Errorf("%w: invalid shape %c", ErrInvalidCard, s[3])
	}
	return NewCard(Number(n), Shape(shp), Shading(sh), Colour(col)), nil
}

// ParseCards parses a whitespace-separated list of card codes.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
