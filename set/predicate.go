package set

// IsSet reports whether three cards form a set: for every attribute the
// cards are either all equal or all different. A triple that repeats a
// card is never a set.
func IsSet(a, b, c Card) bool {
	if a == b || b == c || a == c {
		return false
	}
	x, y, z := a.attrs(), b.attrs(), c.attrs()
	for i := range x {
		// For values in {0,1,2} the sum is 0 mod 3 exactly when the three
		// are all equal or all different.
		if (x[i]+y[i]+z[i])%Values != 0 {
			return false
		}
	}
	return true
}

// ThirdCard returns the unique card completing a set with a and b. For each
// attribute it keeps the shared value or picks the one neither card has.
// The result is only meaningful for distinct a and b.
func ThirdCard(a, b Card) Card {
	x, y := a.attrs(), b.attrs()
	var out [4]uint8
	for i := range out {
		out[i] = (2*Values - x[i] - y[i]) % Values
	}
	return fromAttrs(out)
}
