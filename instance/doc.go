// Package instance parses Latin-square completion problem instances from
// a stream of whitespace-separated integers and writes completed grids back
// out in the corresponding plain-text format.
//
// Input format: n, followed by zero or more (row, col, color) triples, read
// to EOF. Each triple fixes cell (row, col) to color; row, col and color
// are all 0-based and must lie in [0, n).
//
// Output format: n lines of n space-separated integers, one row per line.
package instance
