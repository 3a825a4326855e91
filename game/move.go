package game

import (
	"fmt"
	"slices"

	"github.com/lox/setgame/internal/gameid"
	"github.com/lox/setgame/set"
)

// Move names three play-area positions of the game that built it. Moves
// are only created by Game.Move, Game.MoveOf and Game.FindSets.
type Move struct {
	game gameid.ID
	pos  [3]int
}

// Positions returns the positions in the order they were given.
func (m Move) Positions() (int, int, int) {
	return m.pos[0], m.pos[1], m.pos[2]
}

// Triple returns the positions in ascending order.
func (m Move) Triple() set.Triple {
	t := set.Triple(m.pos)
	slices.Sort(t[:])
	return t
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d, %d)", m.pos[0], m.pos[1], m.pos[2])
}

// PlayedCard is a card on the table of a specific game.
type PlayedCard[C comparable] struct {
	card C
	game gameid.ID
}

// Card returns the plain card value.
func (p PlayedCard[C]) Card() C {
	return p.card
}

// Move binds three positions to g. Positions are validated when the move
// is attempted, not here.
func (g *Game[C]) Move(i, j, k int) Move {
	return Move{game: g.id, pos: [3]int{i, j, k}}
}

// MoveOf builds a move from three played cards, resolving each to its
// current position. Cards from another game, or cards that have since left
// the table, are rejected.
func (g *Game[C]) MoveOf(a, b, c PlayedCard[C]) (Move, error) {
	m := Move{game: g.id}
	for n, p := range [3]PlayedCard[C]{a, b, c} {
		if p.game != g.id {
			return Move{}, fmt.Errorf("%w: %v", ErrForeignCard, p.card)
		}
		i := slices.Index(g.inPlay, p.card)
		if i < 0 {
			return Move{}, fmt.Errorf("%w: card %v is no longer in play", ErrInvalidMove, p.card)
		}
		m.pos[n] = i
	}
	return m, nil
}

// positions validates m against the current play area and returns its
// positions in ascending order.
func (g *Game[C]) positions(m Move) (set.Triple, error) {
	if m.game != g.id {
		return set.Triple{}, fmt.Errorf("%w (move from %s, game %s)", ErrForeignMove, m.game, g.id)
	}
	t := m.Triple()
	for _, p := range t {
		if p < 0 || p >= len(g.inPlay) {
			return set.Triple{}, fmt.Errorf("%w: position %d out of range [0, %d)", ErrInvalidMove, p, len(g.inPlay))
		}
	}
	if t[0] == t[1] || t[1] == t[2] {
		return set.Triple{}, fmt.Errorf("%w: repeated position in %s", ErrInvalidMove, m)
	}
	return t, nil
}
