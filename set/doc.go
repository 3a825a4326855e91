// Package set implements the classic Set card model: 81 cards, each with a
// number, shape, shading and colour drawn from three values.
//
// # Basic Usage
//
//	a, _ := set.ParseCard("1ROE")
//	b, _ := set.ParseCard("2ROE")
//	c := set.ThirdCard(a, b) // 3ROE
//	set.IsSet(a, b, c)       // true
//
// FindSets enumerates every set in a play area and is what the game
// package uses to answer "which moves are available".
package set
