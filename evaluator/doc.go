// Package evaluator provides O(1) incremental conflict-delta evaluation for
// tabu search's row-swap moves, backed by two auxiliary tables:
//
//   - ColColorCount[color][col] is the set of rows whose current cell in
//     that column holds that color — an IndexSet rather than a bare count,
//     so RowConflictIndex can recover exactly which rows are affected by a
//     move without a second grid scan.
//   - DomainFit[row][col] records whether the cell's current color is still
//     a member of that cell's propagated BitDomain.
//
// A move swaps the colors at two columns within one row. Delta1 and Delta2
// compute the resulting change to color-repeat conflict and domain conflict in O(1)
// from the tables above; Apply then performs the swap and updates both
// tables, returning the four (color, column) pairs whose counts changed so
// RowConflictIndex can refresh only what moved.
package evaluator
