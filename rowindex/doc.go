// Package rowindex implements RowConflictIndex: for every row, the
// partition of its non-fixed columns into those currently involved in a
// column-color conflict and those that are not. Tabu search draws its
// neighborhood move's first coordinate from the conflict set of a row and
// its second coordinate from the union of both sets, so keeping this
// partition current in O(1) per affected cell (rather than rescanning a row
// after every move) is what keeps move generation itself O(1).
package rowindex
