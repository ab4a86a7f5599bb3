package editor

import "github.com/iw2rmb/waypoint/buffer"

// Direction is the direction of a history jump.
type Direction uint8

const (
	JumpBack Direction = iota
	JumpForward
)

func (d Direction) String() string {
	if d == JumpForward {
		return "forward"
	}
	return "back"
}

// JumpEvent describes one effective history navigation.
type JumpEvent struct {
	Doc       DocID
	Name      string
	Direction Direction
	From, To  buffer.Pos

	// Index and Len are the history state after the jump; see
	// navhistory.Store.Index.
	Index int
	Len   int
}
