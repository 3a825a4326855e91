package game

import (
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/setgame/internal/randutil"
	"github.com/lox/setgame/set"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
}

// singleSetDeal returns a full classic deck in deal order whose first twelve
// cards hold exactly one set, at positions 2, 5 and 9.
func singleSetDeal(t *testing.T) []set.Card {
	t.Helper()

	for seed := int64(1); seed <= 200; seed++ {
		order := set.NewDeck(randutil.New(seed)).Cards()
		a, b := order[0], order[1]
		c := set.ThirdCard(a, b)

		chosen := []set.Card{a, b, c}
		for _, x := range order[2:] {
			if len(chosen) == 12 {
				break
			}
			if x == c {
				continue
			}
			candidate := append(slices.Clone(chosen), x)
			if len(set.FindSets(candidate)) == 1 {
				chosen = candidate
			}
		}
		if len(chosen) < 12 {
			continue
		}

		table := make([]set.Card, 12)
		table[2], table[5], table[9] = a, b, c
		others := chosen[3:]
		for i := range table {
			if i == 2 || i == 5 || i == 9 {
				continue
			}
			table[i] = others[0]
			others = others[1:]
		}

		deal := table
		for _, x := range set.Cards() {
			if !slices.Contains(table, x) {
				deal = append(deal, x)
			}
		}
		require.Len(t, deal, set.DeckSize)
		return deal
	}

	t.Fatal("could not build a deal holding a single set")
	return nil
}

func triples(moves []Move) []set.Triple {
	out := make([]set.Triple, len(moves))
	for i, m := range moves {
		out[i] = m.Triple()
	}
	return out
}
