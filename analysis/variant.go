package analysis

import (
	rand "math/rand/v2"

	"github.com/lox/setgame/deck"
	"github.com/lox/setgame/set"
	"github.com/lox/setgame/set/projective"
)

// Variant describes a card universe to the harness.
type Variant[C comparable] struct {
	Name string
	// Size is the number of cards in the universe. Index maps each card
	// into [0, Size).
	Size      int
	Universe  func() []C
	ThirdCard func(a, b C) C
	Index     func(C) int
}

// Classic is the 81-card variant.
func Classic() Variant[set.Card] {
	return Variant[set.Card]{
		Name:      "classic",
		Size:      set.DeckSize,
		Universe:  set.Cards,
		ThirdCard: set.ThirdCard,
		Index:     set.Card.Index,
	}
}

// Projective is the 63-card variant.
func Projective() Variant[projective.Card] {
	return Variant[projective.Card]{
		Name:      "projective",
		Size:      projective.DeckSize,
		Universe:  projective.Cards,
		ThirdCard: projective.ThirdCard,
		Index:     projective.Card.Index,
	}
}

// SetFree streams cards in order and keeps each one unless it completes a
// set with two cards kept earlier. Rejected cards are never reconsidered.
// The kept cards are returned in the order they were accepted.
func (v Variant[C]) SetFree(cards []C) []C {
	kept := make([]C, 0, 32)
	seen := newCardBits(v.Size)

	for _, c := range cards {
		if seen.has(v.Index(c)) || v.completes(kept, seen, c) {
			continue
		}
		kept = append(kept, c)
		seen.add(v.Index(c))
	}
	return kept
}

func (v Variant[C]) completes(kept []C, seen cardBits, c C) bool {
	for _, k := range kept {
		if seen.has(v.Index(v.ThirdCard(k, c))) {
			return true
		}
	}
	return false
}

// Trial shuffles a full deck with rng and returns how many cards SetFree
// keeps when they are drawn from the top.
func (v Variant[C]) Trial(rng *rand.Rand) int {
	d := deck.Shuffled(v.Universe(), rng)
	cards, _ := d.PopN(d.Remaining())
	return len(v.SetFree(cards))
}

// cardBits is a membership bitset over card indices.
type cardBits []uint64

func newCardBits(size int) cardBits {
	return make(cardBits, (size+63)/64)
}

func (b cardBits) add(i int) {
	b[i/64] |= 1 << (i % 64)
}

func (b cardBits) has(i int) bool {
	if i < 0 || i/64 >= len(b) {
		return false
	}
	return b[i/64]&(1<<(i%64)) != 0
}
