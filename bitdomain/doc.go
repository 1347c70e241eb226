// Package bitdomain implements BitDomain, a fixed-capacity bitset used to
// represent the set of colors still available to a Latin-square cell.
//
// Internally a BitDomain packs up to MaxBits bits into two uint64 words, so
// every operation (insert, erase, contains, union, intersect, popcount,
// first-set, i-th-set) runs in O(1) or O(MaxBits/64) word-parallel steps
// rather than a per-bit loop. Capacity is fixed at construction and never
// grows: a BitDomain always represents a subset of {0, ..., capacity-1}.
//
// Use this package when you need dense, branch-light set algebra over a
// small bounded universe (n ≤ 128 colors) — the hot path of domain
// propagation and tabu-search evaluation both rely on BitDomain's O(1)
// popcount and bit-scan operations running millions of times per second.
package bitdomain

// MaxBits is the largest universe size a BitDomain can represent.
const MaxBits = 128

const wordBits = 64
const numWords = MaxBits / wordBits
