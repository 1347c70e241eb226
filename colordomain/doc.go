// Package colordomain implements ColorDomain: the n x n grid of BitDomain
// color candidates that constraint propagation narrows before tabu search
// ever runs.
//
// Two propagation rules are applied to a fixpoint:
//
//   - Naked single: a cell whose domain has shrunk to exactly one color is
//     fixed to that color, and the color is removed from every other
//     non-fixed cell in its row (and, when column propagation is enabled,
//     its column too).
//   - Hidden single (the k = n-1 rule): if a color is a candidate in only
//     one non-fixed cell of a row (respectively column), that cell must be
//     that color even though its own domain may still list others; it is
//     fixed immediately rather than waiting for its domain to shrink on its
//     own.
//
// Once Simplify reaches a fixpoint, ColorDomain is treated as a read-only,
// immutable snapshot: InitialSolution never mutates the receiver, so many
// goroutines can call it concurrently against the same *ColorDomain to draw
// independent randomized starting grids for a parallel tabu-search driver.
package colordomain
