package projective

import (
	rand "math/rand/v2"

	"github.com/lox/setgame/deck"
	"github.com/lox/setgame/set"
)

// IsSet reports whether every colour appears an even number of times among
// the three cards, i.e. their masks XOR to zero. It does not assume the
// cards are distinct: a repeated card always leaves some colour odd.
func IsSet(a, b, c Card) bool {
	return a^b^c == 0
}

// ThirdCard returns the card completing a set with a and b. For equal
// inputs there is no completion and the zero (invalid) card is returned.
func ThirdCard(a, b Card) Card {
	return a ^ b
}

// FindSets returns every set among cards, ordered like set.FindSets.
func FindSets(cards []Card) []set.Triple {
	return set.FindTriples(cards, IsSet)
}

// Cards returns all 63 cards in ascending mask order.
func Cards() []Card {
	cards := make([]Card, 0, DeckSize)
	for i := 1; i <= DeckSize; i++ {
		cards = append(cards, Card(i))
	}
	return cards
}

// NewDeck creates a shuffled 63-card deck using rng.
func NewDeck(rng *rand.Rand) *deck.Deck[Card] {
	return deck.Shuffled(Cards(), rng)
}
