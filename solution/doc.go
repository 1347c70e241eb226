// Package solution defines Solution, the scored candidate grid tabu search
// mutates: an n x n color assignment plus the two conflict counters that
// order candidates during search — total color-repeat conflict and domain
// conflict (cells whose current color has fallen out of their propagated
// BitDomain).
package solution
