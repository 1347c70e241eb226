// Package tabu implements Table, a dense n^3 tabu list recording, per
// (row, col, color) triple, the search iteration at which that assignment
// stops being forbidden. A move is tabu while the current iteration is
// still below its recorded unlock iteration.
package tabu
