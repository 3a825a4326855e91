package set

import (
	rand "math/rand/v2"

	"github.com/lox/setgame/deck"
)

// Cards returns all 81 cards in canonical order, number varying slowest and
// colour fastest.
func Cards() []Card {
	cards := make([]Card, 0, DeckSize)
	for n := One; n <= Three; n++ {
		for s := Oval; s <= Diamond; s++ {
			for sh := Empty; sh <= Full; sh++ {
				for c := Red; c <= Purple; c++ {
					cards = append(cards, NewCard(n, s, sh, c))
				}
			}
		}
	}
	return cards
}

// NewDeck creates a shuffled 81-card deck using rng.
func NewDeck(rng *rand.Rand) *deck.Deck[Card] {
	return deck.Shuffled(Cards(), rng)
}
