package game

import (
	"github.com/lox/setgame/set"
	"github.com/lox/setgame/set/projective"
)

// Rules describes a Set variant to the state machine.
type Rules[C comparable] struct {
	// Name identifies the variant in logs.
	Name string

	// SteadyState is the size of the initial deal and the size the play
	// area returns to when a set is replaced in place.
	SteadyState int

	// SetGuaranteedAt is the play-area size at which a set must exist. The
	// game does not enforce it; front ends use it to refuse further draws.
	SetGuaranteedAt int

	// Universe returns every card of the variant exactly once.
	Universe func() []C

	// IsSet is the variant's set predicate.
	IsSet func(a, b, c C) bool
}

// DeckSize returns the number of cards in the variant's universe.
func (r Rules[C]) DeckSize() int {
	return len(r.Universe())
}

// Classic returns the rules for the 81-card game.
func Classic() Rules[set.Card] {
	return Rules[set.Card]{
		Name:            "classic",
		SteadyState:     12,
		SetGuaranteedAt: 21,
		Universe:        set.Cards,
		IsSet:           set.IsSet,
	}
}

// Projective returns the rules for the 63-card projective game. The largest
// set-free collection of projective cards has 32 members.
func Projective() Rules[projective.Card] {
	return Rules[projective.Card]{
		Name:            "projective",
		SteadyState:     7,
		SetGuaranteedAt: 33,
		Universe:        projective.Cards,
		IsSet:           projective.IsSet,
	}
}
