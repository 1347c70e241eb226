// Package indexset implements IndexSet, a dense set over a fixed universe
// {0, ..., capacity-1} supporting O(1) insert, erase, contains and
// iteration. It trades BitDomain's word-parallel set algebra for O(1)
// membership mutation with stable, cache-friendly iteration order — the
// shape RowConflictIndex and the per-(color,column) row registries need
// when a single cell update must move a column between two sets in O(1)
// without rescanning either one.
//
// Internally an IndexSet keeps a dense slice of its members (data) and a
// parallel position table (pos) mapping each universe element to its index
// in data, or -1 if absent. Erase swaps the removed element with the last
// element of data before truncating, so both Insert and Erase are O(1) and
// never shift more than one element.
package indexset
