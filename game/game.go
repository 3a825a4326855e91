package game

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/setgame/deck"
	"github.com/lox/setgame/internal/gameid"
	"github.com/lox/setgame/set"
	"github.com/lox/setgame/set/projective"
)

// State of a game.
type State uint8

const (
	// Active games may still draw or hold a set on the table.
	Active State = iota
	// Exhausted games have an empty deck and no set on the table.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Game owns one deck, one play area and a score. It is not safe for
// concurrent use.
type Game[C comparable] struct {
	id     gameid.ID
	rules  Rules[C]
	deck   *deck.Deck[C]
	inPlay []C
	score  int
	logger *log.Logger
}

// ClassicGame is a game of the 81-card variant.
type ClassicGame = Game[set.Card]

// ProjectiveGame is a game of the 63-card variant.
type ProjectiveGame = Game[projective.Card]

// New shuffles a full deck and deals the initial play area from the top.
func New[C comparable](rules Rules[C], opts ...Option) *Game[C] {
	o := newOptions(opts)
	return newGame(rules, deck.Shuffled(rules.Universe(), o.rng), o)
}

// NewClassic starts a classic game.
func NewClassic(opts ...Option) *ClassicGame {
	return New(Classic(), opts...)
}

// NewProjective starts a projective game.
func NewProjective(opts ...Option) *ProjectiveGame {
	return New(Projective(), opts...)
}

// NewFromDeck starts a game that deals cards in slice order: cards[0] is
// the first card dealt. It is meant for tests and replays.
func NewFromDeck[C comparable](rules Rules[C], cards []C, opts ...Option) (*Game[C], error) {
	if len(cards) < rules.SteadyState {
		return nil, fmt.Errorf("%w: %d cards, the initial deal needs %d", ErrInvalidDeck, len(cards), rules.SteadyState)
	}
	seen := make(map[C]struct{}, len(cards))
	for _, c := range cards {
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: duplicate card %v", ErrInvalidDeck, c)
		}
		seen[c] = struct{}{}
	}

	stack := slices.Clone(cards)
	slices.Reverse(stack)
	return newGame(rules, deck.New(stack), newOptions(opts)), nil
}

func newGame[C comparable](rules Rules[C], d *deck.Deck[C], o options) *Game[C] {
	dealt, ok := d.PopN(rules.SteadyState)
	if !ok {
		// Both universes are far larger than their initial deal.
		panic("game: deck smaller than the initial deal")
	}

	g := &Game[C]{
		id:     gameid.New(),
		rules:  rules,
		deck:   d,
		inPlay: dealt,
		logger: o.logger.With("game", rules.Name),
	}
	g.logger.Debug("Dealt initial play area", "id", g.id, "in_play", len(g.inPlay), "remaining", d.Remaining())
	return g
}

// ID returns the identifier binding moves and played cards to this game.
func (g *Game[C]) ID() string {
	return g.id.String()
}

// Rules returns the variant rules the game was created with.
func (g *Game[C]) Rules() Rules[C] {
	return g.rules
}

// Score returns the current score. It may be negative.
func (g *Game[C]) Score() int {
	return g.score
}

// Remaining returns the number of cards left in the deck
func (g *Game[C]) Remaining() int {
	return g.deck.Remaining()
}

// CardsInPlay returns a copy of the play area in display order.
func (g *Game[C]) CardsInPlay() []C {
	return slices.Clone(g.inPlay)
}

// InPlay returns the play area as cards bound to this game.
func (g *Game[C]) InPlay() []PlayedCard[C] {
	out := make([]PlayedCard[C], len(g.inPlay))
	for i, c := range g.inPlay {
		out[i] = PlayedCard[C]{card: c, game: g.id}
	}
	return out
}

// State reports whether the game can continue.
func (g *Game[C]) State() State {
	if g.deck.IsEmpty() && !g.hasSet() {
		return Exhausted
	}
	return Active
}

// FindSets returns every set on the table as moves bound to g, ordered by
// ascending positions.
func (g *Game[C]) FindSets() []Move {
	triples := set.FindTriples(g.inPlay, g.rules.IsSet)
	moves := make([]Move, len(triples))
	for i, t := range triples {
		moves[i] = Move{game: g.id, pos: t}
	}
	return moves
}

func (g *Game[C]) hasSet() bool {
	n := len(g.inPlay)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if g.rules.IsSet(g.inPlay[i], g.inPlay[j], g.inPlay[k]) {
					return true
				}
			}
		}
	}
	return false
}

// AttemptMove checks the three cards named by m. A malformed move fails
// with ErrInvalidMove and changes nothing. A wrong guess costs a point and
// fails with ErrNotASet. A set scores a point and the play area is
// replenished:
//
//   - deck empty: the three cards are removed, the rest keep their order;
//   - play area at or below steady state: each card is replaced in place
//     from the deck (cards the deck cannot cover are removed);
//   - play area oversized: the three cards are removed without
//     replacement, refilling any hole below the new end from the tail.
func (g *Game[C]) AttemptMove(m Move) error {
	t, err := g.positions(m)
	if err != nil {
		return err
	}
	if g.State() == Exhausted {
		return ErrGameOver
	}

	a, b, c := g.inPlay[t[0]], g.inPlay[t[1]], g.inPlay[t[2]]
	if !g.rules.IsSet(a, b, c) {
		g.score--
		g.logger.Debug("Not a set", "move", m, "cards", []C{a, b, c}, "score", g.score)
		return fmt.Errorf("%w: %v %v %v", ErrNotASet, a, b, c)
	}

	g.score++
	switch {
	case g.deck.IsEmpty():
		g.remove(t[:])
	case len(g.inPlay) <= g.rules.SteadyState:
		g.replace(t)
	default:
		g.shrink(t)
	}
	g.logger.Debug("Set found", "move", m, "cards", []C{a, b, c}, "score", g.score,
		"in_play", len(g.inPlay), "remaining", g.deck.Remaining())

	if g.State() == Exhausted {
		g.logger.Debug("Game exhausted", "score", g.score)
	}
	return nil
}

// DrawThree deals three more cards onto the table at the cost of a point.
// With fewer than three cards left nothing is drawn and ErrDeckExhausted is
// returned. The game never refuses a draw because a set is visible.
func (g *Game[C]) DrawThree() error {
	cards, ok := g.deck.PopN(3)
	if !ok {
		return fmt.Errorf("%w: %d cards left", ErrDeckExhausted, g.deck.Remaining())
	}
	g.inPlay = append(g.inPlay, cards...)
	g.score--
	g.logger.Debug("Drew three", "cards", cards, "score", g.score, "in_play", len(g.inPlay))
	return nil
}

// replace fills positions t in ascending order from the deck. Positions the
// deck cannot cover are removed.
func (g *Game[C]) replace(t set.Triple) {
	var dropped []int
	for _, p := range t {
		if c, ok := g.deck.Pop(); ok {
			g.inPlay[p] = c
		} else {
			dropped = append(dropped, p)
		}
	}
	g.remove(dropped)
}

// shrink removes three matched positions from an oversized play area.
// Positions at or past the new end are dropped; each position before it
// takes the card popped from the tail. Only three-card removal is
// supported.
func (g *Game[C]) shrink(t set.Triple) {
	end := len(g.inPlay) - len(t)

	var before, after []int
	for _, p := range t {
		if p < end {
			before = append(before, p)
		} else {
			after = append(after, p)
		}
	}

	g.remove(after)
	for _, p := range before {
		last := len(g.inPlay) - 1
		g.inPlay[p] = g.inPlay[last]
		g.inPlay = g.inPlay[:last]
	}
}

// remove deletes ascending positions, highest first so earlier positions
// stay valid.
func (g *Game[C]) remove(positions []int) {
	for i := len(positions) - 1; i >= 0; i-- {
		p := positions[i]
		g.inPlay = slices.Delete(g.inPlay, p, p+1)
	}
}
