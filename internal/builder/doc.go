// Package builder carves selected G-code into regions.
//
// Three domains share one contract. A [Builder] for Mill, Turn or Drill
// takes the selected text, the full current document and a base name and
// returns one [Block] per region it found:
//
//	(POCKET (1) ST)
//	Z-2                                                            (M:D0000)
//	G0X0Y0                                                         (M:D0001)
//	...
//	(POCKET (1) END)
//
// Interior lines carry a fresh display tag whose set letter is allocated
// by scanning the whole document for the highest letter already in use, so
// new blocks never collide with tags of any kind. A candidate with no real
// content produces no block and consumes no letter.
//
// [AddFromGcodeOnly] is the second entry point: it takes lines that are
// already segmented (no ST/END wrapper), anchors them, records the axis
// extrema snapshot markers and registers the resulting Region.
//
// Builders never modify their input.
package builder
