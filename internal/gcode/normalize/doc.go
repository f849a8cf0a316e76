// Package normalize decides what a G-code line means for comparison.
//
// Every place that compares two lines goes through one of the keys defined
// here:
//
//   - [KeyWithTag]: drops the line-number prefix and leading anchor, keeps
//     the display tag. Used by the locator.
//   - [KeyAsIs]: whitespace removal and uppercasing only. Used for text that
//     never carries addressing.
//   - [KeyForMatch]: drops addressing and every parenthesized block, so two
//     lines compare equal when their payload is equal.
//
// [InsertAndAlignTag] is the rendering counterpart: it strips addressing and
// aligns a trailing display tag on a fixed column.
package normalize
