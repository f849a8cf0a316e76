// Package region holds the Region entity and the per-kind collections the
// builders register regions into.
//
// A Region is a named, ordered sub-sequence of G-code lines. Every stored
// line is anchored (#uid,n#) and normally tagged ((K:Lnnnn)); see package
// address for both formats. Snapshot values are anchored lines the owner
// wants to refer back to (the Z-plane line, the first X line, ...); a
// rebuild moves them positionally with the lines they point at.
//
// Collections keep insertion order, which defines each region's set
// letter during a rebuild. Nothing here is safe for concurrent use: the
// whole core is single-threaded.
package region
