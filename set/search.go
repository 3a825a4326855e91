package set

// Triple is an ascending triple of play-area positions.
type Triple [3]int

// FindTriples returns every index triple i<j<k of cards for which isSet
// holds, ordered by i, then j, then k. Cost is cubic in len(cards).
func FindTriples[C any](cards []C, isSet func(a, b, c C) bool) []Triple {
	var out []Triple
	n := len(cards)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if isSet(cards[i], cards[j], cards[k]) {
					out = append(out, Triple{i, j, k})
				}
			}
		}
	}
	return out
}

// FindSets returns every set among cards.
func FindSets(cards []Card) []Triple {
	return FindTriples(cards, IsSet)
}

// HasSet reports whether cards contain at least one set.
func HasSet(cards []Card) bool {
	n := len(cards)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			third := ThirdCard(cards[i], cards[j])
			for k := j + 1; k < n; k++ {
				if cards[k] == third && IsSet(cards[i], cards[j], cards[k]) {
					return true
				}
			}
		}
	}
	return false
}
