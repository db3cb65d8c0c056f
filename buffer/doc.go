// Package buffer implements the bounded text storage behind a segmented PIN
// or one-time-code field.
//
// A character is one extended grapheme cluster. Positions are 0-based
// character offsets; Start() is 0 and End() is Len(). Ranges are pairs of
// positions in any order and are normalized (min/max) whenever they are used
// to query or slice the value. No operation panics on an out-of-bounds range:
// offsets are clamped before any slicing.
package buffer
