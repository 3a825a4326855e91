// Package game implements the Set game state machine for both the classic
// and the projective variant.
//
// A Game owns its deck, its play area and its score. Callers interact with
// it only through moves and draws:
//
//	g := game.NewClassic(game.WithSeed(42))
//	for _, m := range g.FindSets() {
//	    if err := g.AttemptMove(m); err != nil {
//	        // handle ErrNotASet, ErrInvalidMove, ...
//	    }
//	    break
//	}
//	if err := g.DrawThree(); errors.Is(err, game.ErrDeckExhausted) {
//	    // no more cards
//	}
//
// # Instance Isolation
//
// Every game carries an opaque ID. Moves and played cards record the ID of
// the game that produced them, and AttemptMove and MoveOf reject anything
// built by another game with an error wrapping ErrInvalidMove, even when
// both games hold identical cards.
//
// # Play Area Sizing
//
// The play area starts at Rules.SteadyState cards. DrawThree grows it; a
// set found while the area is oversized shrinks it by three without
// replacement, moving at most one card per hole. Front ends that want to
// refuse draws once a set is guaranteed should compare against
// Rules.SetGuaranteedAt themselves.
package game
