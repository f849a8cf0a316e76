// Package cleanup rebuilds every stored region.
//
// A rebuild strips line-number prefixes, stale anchors, display tags and
// legacy comments from each line, drops lines left blank, then assigns
// fresh anchors (#uid,n#) and display tags ((K:Lnnnn)) in order. Snapshot
// values that point at a line through its anchor are moved with that line:
// the old ordinal is looked up in a remap table built during the rewrite,
// never by searching for the line's content, because content is not unique
// while the ordinal is.
//
// The engine also renders an editor-ready text of all regions and a short
// report of what was removed.
package cleanup
