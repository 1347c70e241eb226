// Package latinsquare is a library for completing partially-filled Latin
// squares: parse an instance, propagate its color constraints to a
// fixpoint, then run tabu search (optionally across several parallel
// workers) until a conflict-free completion is found or the time budget
// runs out.
//
// The library is organized as a set of small, single-purpose packages
// rather than one flat package:
//
//   - bitdomain and indexset supply the two dense, fixed-universe set
//     representations everything else is built from.
//   - instance and colordomain parse a problem and propagate its color
//     constraints to a fixpoint before any search begins.
//   - solution, evaluator and rowindex give tabu search an O(1) incremental
//     view of conflict deltas for a candidate row-swap move.
//   - tabu and tabusearch implement the tabu list and the search engine
//     itself.
//   - parallel fans multiple independently seeded tabusearch engines out
//     across goroutines and reduces them to a single best result.
//
// See cmd/solver for the command-line driver.
package latinsquare
