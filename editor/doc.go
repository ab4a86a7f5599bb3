// Package editor provides a Bubble Tea document viewer with per-document
// navigation history.
//
// The Model hosts several read-only documents as tabs. Every effective
// cursor move is reported to a navhistory.Store; the Back and Forward
// bindings step through that history and scroll the target into the middle
// of the viewport.
package editor
