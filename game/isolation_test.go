package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/setgame/set"
)

func TestForeignMoveRejected(t *testing.T) {
	// Both games hold the same cards in the same order.
	g1, err := NewFromDeck(Classic(), set.Cards())
	require.NoError(t, err)
	g2, err := NewFromDeck(Classic(), set.Cards())
	require.NoError(t, err)
	require.Equal(t, g1.CardsInPlay(), g2.CardsInPlay())

	m := g1.Move(0, 1, 2)
	err = g2.AttemptMove(m)
	require.ErrorIs(t, err, ErrForeignMove)
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.Equal(t, 0, g2.Score())
	assert.Equal(t, set.Cards()[:12], g2.CardsInPlay())

	// The same move is fine against the game that built it.
	require.NoError(t, g1.AttemptMove(m))
	assert.Equal(t, 1, g1.Score())
}

func TestForeignFindSetsRejected(t *testing.T) {
	g1 := NewClassic(WithSeed(11))
	g2 := NewClassic(WithSeed(11))

	for len(g1.FindSets()) == 0 {
		require.NoError(t, g1.DrawThree())
		require.NoError(t, g2.DrawThree())
	}

	m := g1.FindSets()[0]
	assert.ErrorIs(t, g2.AttemptMove(m), ErrForeignMove)
	assert.NoError(t, g1.AttemptMove(m))
}

func TestZeroMoveRejected(t *testing.T) {
	g := NewClassic(WithSeed(1))
	assert.ErrorIs(t, g.AttemptMove(Move{}), ErrForeignMove)
}

func TestMoveOf(t *testing.T) {
	deal := singleSetDeal(t)
	g, err := NewFromDeck(Classic(), deal)
	require.NoError(t, err)

	played := g.InPlay()
	require.Len(t, played, 12)
	assert.Equal(t, deal[5], played[5].Card())

	m, err := g.MoveOf(played[9], played[2], played[5])
	require.NoError(t, err)
	i, j, k := m.Positions()
	assert.Equal(t, []int{9, 2, 5}, []int{i, j, k})
	assert.Equal(t, set.Triple{2, 5, 9}, m.Triple())

	require.NoError(t, g.AttemptMove(m))

	t.Run("cards that left the table", func(t *testing.T) {
		_, err := g.MoveOf(played[2], played[0], played[1])
		assert.ErrorIs(t, err, ErrInvalidMove)
		assert.NotErrorIs(t, err, ErrForeignCard)
	})

	t.Run("cards from another game", func(t *testing.T) {
		other, err := NewFromDeck(Classic(), deal)
		require.NoError(t, err)

		theirs := other.InPlay()
		_, err = g.MoveOf(theirs[0], played[0], played[1])
		assert.ErrorIs(t, err, ErrForeignCard)
		assert.ErrorIs(t, err, ErrInvalidMove)
	})
}

func TestMoveString(t *testing.T) {
	g := NewClassic(WithSeed(1))
	assert.Equal(t, "(3, 1, 2)", g.Move(3, 1, 2).String())
}
