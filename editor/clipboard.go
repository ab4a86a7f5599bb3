package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; they are reported in the status line.
type Clipboard interface {
	WriteText(s string) error
}
