// Package address implements the two addressing schemes carried by region
// lines.
//
// An identity anchor (#uid,n#) prefixes a stored line and gives it an
// identity that survives rewrites: uid names the owning region and n is the
// line's 1-based ordinal inside it. A display tag ((K:Lnnnn)) suffixes a
// line and gives it a short human-visible address: K is the region kind, L
// the region's set letter and nnnn a zero-based sequence number.
//
// The two schemes evolve independently. Anchors are only ever rewritten by
// a rebuild, tags are regenerated whenever a region is rendered or rebuilt.
// This package keeps both as small value types with explicit parse and
// format functions; concatenation happens only where lines are rendered.
package address
