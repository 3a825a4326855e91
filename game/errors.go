package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned for a malformed move: repeated or
	// out-of-range positions, or a move bound to another game.
	ErrInvalidMove = errors.New("game: invalid move")

	// ErrForeignMove is returned when a move built by one game is applied
	// to another.
	ErrForeignMove = fmt.Errorf("%w: move belongs to another game", ErrInvalidMove)

	// ErrForeignCard is returned when a played card from one game is used to
	// build a move in another.
	ErrForeignCard = fmt.Errorf("%w: card belongs to another game", ErrInvalidMove)

	// ErrNotASet is returned when a well-formed move does not name a set.
	// The score has already been penalised.
	ErrNotASet = errors.New("game: not a set")

	// ErrDeckExhausted is returned by DrawThree when fewer than three cards
	// remain. Nothing is drawn and the score is unchanged.
	ErrDeckExhausted = errors.New("game: deck exhausted")

	// ErrGameOver is returned by moves once the game is exhausted.
	ErrGameOver = errors.New("game: game over")

	// ErrInvalidDeck is returned by NewFromDeck for a deck that cannot
	// cover the initial deal or repeats a card.
	ErrInvalidDeck = errors.New("game: invalid deck")
)
