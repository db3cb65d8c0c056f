package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end <= start {
		return ""
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	return sb.String()
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Filter partitions the clusters of text by keep, preserving order.
func Filter(text string, keep func(cluster string) bool) (kept, dropped []string) {
	for _, c := range Split(text) {
		if keep == nil || keep(c) {
			kept = append(kept, c)
			continue
		}
		dropped = append(dropped, c)
	}
	return kept, dropped
}

// AllRunes reports whether every rune of cluster satisfies fn.
// An empty cluster never satisfies.
func AllRunes(cluster string, fn func(r rune) bool) bool {
	if cluster == "" || fn == nil {
		return false
	}
	for _, r := range cluster {
		if !fn(r) {
			return false
		}
	}
	return true
}
