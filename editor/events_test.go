package editor

import (
	"testing"

	"github.com/iw2rmb/waypoint/buffer"
)

func TestDirection_String(t *testing.T) {
	if got := JumpBack.String(); got != "back" {
		t.Fatalf("JumpBack: got %q", got)
	}
	if got := JumpForward.String(); got != "forward" {
		t.Fatalf("JumpForward: got %q", got)
	}
}

func TestOnJump_ReportsEffectiveNavigation(t *testing.T) {
	var events []JumpEvent
	m := New(Config{
		Documents: []Document{{Name: "a.txt", Text: numbered(200)}},
		OnJump:    func(ev JumpEvent) { events = append(events, ev) },
	})
	id, _ := m.Active()

	m = press(m, keyBottom, keyBack, keyBack)
	if len(events) != 1 {
		t.Fatalf("events: got %d, want 1 (second back is at the oldest entry)", len(events))
	}
	want := JumpEvent{
		Doc:       id,
		Name:      "a.txt",
		Direction: JumpBack,
		From:      buffer.Pos{Row: 199, GraphemeCol: 8},
		To:        buffer.Pos{},
		Index:     -1,
		Len:       2,
	}
	if events[0] != want {
		t.Fatalf("event: got %+v, want %+v", events[0], want)
	}

	_ = press(m, keyForward, keyForward)
	if len(events) != 2 {
		t.Fatalf("events: got %d, want 2", len(events))
	}
	if got := events[1]; got.Direction != JumpForward || got.Index != 0 || got.To.Row != 199 {
		t.Fatalf("forward event: got %+v", got)
	}
}
