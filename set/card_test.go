package set

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardsCanonicalDeck(t *testing.T) {
	cards := Cards()
	require.Len(t, cards, DeckSize)

	seen := make(map[Card]bool)
	for i, c := range cards {
		assert.Equal(t, i, c.Index(), "canonical order must match the index encoding")
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}

	assert.Equal(t, NewCard(One, Oval, Empty, Red), cards[0])
	assert.Equal(t, NewCard(One, Oval, Empty, Green), cards[1])
	assert.Equal(t, NewCard(Three, Diamond, Full, Purple), cards[80])

	for _, want := range []Card{
		NewCard(One, Oval, Half, Purple),
		NewCard(Three, Wave, Full, Green),
		NewCard(Two, Diamond, Empty, Red),
	} {
		assert.True(t, seen[want], "missing %s", want)
	}
}

func TestCardAttributes(t *testing.T) {
	c := NewCard(Two, Diamond, Half, Purple)
	assert.Equal(t, Two, c.Number())
	assert.Equal(t, Diamond, c.Shape())
	assert.Equal(t, Half, c.Shading())
	assert.Equal(t, Purple, c.Colour())
}

func TestCardFromIndex(t *testing.T) {
	c, err := CardFromIndex(40)
	require.NoError(t, err)
	assert.Equal(t, 40, c.Index())

	for _, i := range []int{-1, 81, 255} {
		_, err := CardFromIndex(i)
		assert.True(t, errors.Is(err, ErrInvalidCard), "index %d", i)
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(One, Oval, Empty, Red), "1REO"},
		{NewCard(Two, Wave, Half, Green), "2GHW"},
		{NewCard(Three, Diamond, Full, Purple), "3PFD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.card.String())
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	for _, c := range Cards() {
		got, err := ParseCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	lower, err := ParseCard("2ghw")
	require.NoError(t, err)
	assert.Equal(t, NewCard(Two, Wave, Half, Green), lower)
}

func TestParseCardErrors(t *testing.T) {
	for _, s := range []string{"", "2GH", "2GHWX", "4GHW", "2XHW", "2GXW", "2GHX"} {
		_, err := ParseCard(s)
		assert.True(t, errors.Is(err, ErrInvalidCard), "input %q", s)
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards(" 1REO  2GHW\t3PFD ")
	require.NoError(t, err)
	assert.Equal(t, []Card{
		NewCard(One, Oval, Empty, Red),
		NewCard(Two, Wave, Half, Green),
		NewCard(Three, Diamond, Full, Purple),
	}, cards)

	_, err = ParseCards("1REO nope")
	assert.Error(t, err)
}
