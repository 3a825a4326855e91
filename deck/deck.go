// Package deck provides a stack-ordered deck shared by both Set variants.
//
// A Deck draws from the end of its backing slice, so Pop is O(1) and the
// remaining cards never need to be re-sorted. Randomness is always injected
// as a *rand.Rand so tests can reproduce a shuffle exactly.
package deck

import (
	rand "math/rand/v2"
	"slices"
)

// Deck is a stack of cards. The last element of the backing slice is the top.
type Deck[C any] struct {
	cards []C
}

// New creates a deck over a copy of cards. cards[len(cards)-1] is drawn first.
func New[C any](cards []C) *Deck[C] {
	return &Deck[C]{cards: slices.Clone(cards)}
}

// Shuffled creates a deck over a copy of cards and shuffles it with rng.
func Shuffled[C any](cards []C, rng *rand.Rand) *Deck[C] {
	d := New(cards)
	d.Shuffle(rng)
	return d
}

// Shuffle permutes the remaining cards using Fisher-Yates
func (d *Deck[C]) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Pop removes and returns the top card.
func (d *Deck[C]) Pop() (C, bool) {
	var zero C
	if len(d.cards) == 0 {
		return zero, false
	}
	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards[last] = zero
	d.cards = d.cards[:last]
	return card, true
}

// PopN removes n cards from the top, in draw order. It draws nothing and
// returns false when fewer than n cards remain.
func (d *Deck[C]) PopN(n int) ([]C, bool) {
	if n < 0 || n > len(d.cards) {
		return nil, false
	}
	out := make([]C, 0, n)
	for range n {
		c, _ := d.Pop()
		out = append(out, c)
	}
	return out, true
}

// Push places cards back on top of the deck. The last argument becomes the
// new top, so Push undoes a Pop sequence when given the popped cards in
// reverse order.
func (d *Deck[C]) Push(cards ...C) {
	d.cards = append(d.cards, cards...)
}

// Remaining returns the number of cards left in the deck
func (d *Deck[C]) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck[C]) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck[C]) Cards() []C {
	return slices.Clone(d.cards)
}
