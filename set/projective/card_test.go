package projective

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/setgame/internal/randutil"
)

func TestFromInt(t *testing.T) {
	c, err := FromInt(0b101001)
	require.NoError(t, err)
	assert.True(t, c.Has(Red))
	assert.False(t, c.Has(Orange))
	assert.True(t, c.Has(Yellow))
	assert.False(t, c.Has(Green))
	assert.False(t, c.Has(Blue))
	assert.True(t, c.Has(Purple))
	assert.Equal(t, "R.Y..P", c.String())

	for _, bad := range []int{0, 64, 100, -3} {
		_, err := FromInt(bad)
		assert.True(t, errors.Is(err, ErrInvalidCard), "value %d", bad)
	}
}

func TestNew(t *testing.T) {
	c, err := New(Blue, Red, Blue)
	require.NoError(t, err)
	assert.Equal(t, []Colour{Red, Blue}, c.Colours())
	assert.Equal(t, 34, c.Int())

	_, err = New()
	assert.ErrorIs(t, err, ErrInvalidCard)

	_, err = New(Colour(6))
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestCardsDeck(t *testing.T) {
	cards := Cards()
	require.Len(t, cards, DeckSize)

	seen := make(map[Card]bool)
	for i, c := range cards {
		assert.Equal(t, i, c.Index())
		assert.NotZero(t, c)
		assert.False(t, seen[c])
		seen[c] = true
	}

	d := NewDeck(randutil.New(3))
	assert.Equal(t, DeckSize, d.Remaining())
	shuffled := d.Cards()
	assert.ElementsMatch(t, cards, shuffled)
}

func TestParseCard(t *testing.T) {
	for _, c := range Cards() {
		got, err := ParseCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCard("r.y..p")
	require.NoError(t, err)
	assert.Equal(t, Card(0b101001), got)

	for _, bad := range []string{"......", "R.Y..", "RXY..P", "O....."} {
		_, err := ParseCard(bad)
		assert.ErrorIs(t, err, ErrInvalidCard, "input %q", bad)
	}
}
