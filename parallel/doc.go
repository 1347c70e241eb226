// Package parallel implements Run, a bounded multi-start wrapper around
// tabusearch.Engine: it runs several independently seeded engines
// concurrently against the same frozen ColorDomain, cancels the remaining
// workers as soon as one finds an optimal (zero-conflict) solution, and
// reduces their results down to a single best solution under mutual
// exclusion.
package parallel
