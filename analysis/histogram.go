package analysis

import (
	"maps"
	"math"
	"slices"
)

// Histogram counts trials per result. Use make(Histogram) or NewHistogram
// before adding to it.
type Histogram map[int]int

// NewHistogram returns an empty histogram.
func NewHistogram() Histogram {
	return make(Histogram)
}

// Add records one trial with result v.
func (h Histogram) Add(v int) {
	h[v]++
}

// Merge adds every count from o into h.
func (h Histogram) Merge(o Histogram) {
	for v, n := range o {
		h[v] += n
	}
}

// Total returns the number of recorded trials.
func (h Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Keys returns the observed results in ascending order.
func (h Histogram) Keys() []int {
	return slices.Sorted(maps.Keys(h))
}

// Percent returns the share of trials with result v, from 0 to 100.
func (h Histogram) Percent(v int) float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	return 100 * float64(h[v]) / float64(total)
}

// Mean returns the arithmetic mean of all results
func (h Histogram) Mean() float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	sum := 0
	for v, n := range h {
		sum += v * n
	}
	return float64(sum) / float64(total)
}

// Variance returns the sample variance of all results
func (h Histogram) Variance() float64 {
	total := h.Total()
	if total < 2 {
		return 0
	}
	mean := h.Mean()
	var ss float64
	for v, n := range h {
		d := float64(v) - mean
		ss += d * d * float64(n)
	}
	return ss / float64(total-1)
}

// StdDev returns the sample standard deviation of all results
func (h Histogram) StdDev() float64 {
	return math.Sqrt(h.Variance())
}

// StdError returns the standard error of the mean
func (h Histogram) StdError() float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	return h.StdDev() / math.Sqrt(float64(total))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (h Histogram) ConfidenceInterval95() (float64, float64) {
	mean := h.Mean()
	margin := 1.96 * h.StdError()
	return mean - margin, mean + margin
}

// Min returns the smallest observed result, or 0 when empty.
func (h Histogram) Min() int {
	keys := h.Keys()
	if len(keys) == 0 {
		return 0
	}
	return keys[0]
}

// Max returns the largest observed result, or 0 when empty.
func (h Histogram) Max() int {
	keys := h.Keys()
	if len(keys) == 0 {
		return 0
	}
	return keys[len(keys)-1]
}
