// Package analysis estimates how many cards a greedy player can lay down
// before a set is forced.
//
// A trial walks one shuffled deck and keeps every card that does not
// complete a set with two cards already kept. Run spreads trials over a pool
// of workers and folds their results into a Histogram keyed by the number of
// cards kept.
package analysis
