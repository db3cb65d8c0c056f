// Package pinview provides a Bubble Tea component for segmented PIN and
// one-time-code entry backed by the buffer package.
//
// The component owns input handling (typing, paste, deletion, caret moves),
// per-slot display state, the secure-text reveal delay and host callbacks.
// Rendering is a thin lipgloss layer over Slots().
package pinview
