package buffer

import "testing"

func TestDocument_MoveGrapheme_BoundsAndLineCrossing(t *testing.T) {
	d := New("ab\nçd")

	if got := d.Move(Pos{}, Move{Unit: MoveGrapheme, Dir: DirLeft}); got != (Pos{}) {
		t.Fatalf("left at doc start: got %v, want 0:0", got)
	}
	if got, want := d.Move(Pos{Row: 0, GraphemeCol: 2}, Move{Unit: MoveGrapheme, Dir: DirRight}), (Pos{Row: 1, GraphemeCol: 0}); got != want {
		t.Fatalf("right at EOL: got %v, want %v", got, want)
	}
	if got, want := d.Move(Pos{Row: 1, GraphemeCol: 0}, Move{Unit: MoveGrapheme, Dir: DirLeft}), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("left at BOL: got %v, want %v", got, want)
	}
	end := Pos{Row: 1, GraphemeCol: 2}
	if got := d.Move(end, Move{Unit: MoveGrapheme, Dir: DirRight}); got != end {
		t.Fatalf("right at doc end: got %v, want %v", got, end)
	}
}

func TestDocument_MoveLine_HomeEndAndVerticalClamp(t *testing.T) {
	d := New("hello\nw\nworld")

	if got, want := d.Move(Pos{Row: 0, GraphemeCol: 3}, Move{Unit: MoveLine, Dir: DirEnd}), (Pos{Row: 0, GraphemeCol: 5}); got != want {
		t.Fatalf("end: got %v, want %v", got, want)
	}
	if got, want := d.Move(Pos{Row: 0, GraphemeCol: 3}, Move{Unit: MoveLine, Dir: DirHome}), (Pos{}); got != want {
		t.Fatalf("home: got %v, want %v", got, want)
	}
	if got, want := d.Move(Pos{Row: 2, GraphemeCol: 5}, Move{Unit: MoveLine, Dir: DirUp}), (Pos{Row: 1, GraphemeCol: 1}); got != want {
		t.Fatalf("up onto short line: got %v, want %v", got, want)
	}
	if got, want := d.Move(Pos{Row: 2, GraphemeCol: 1}, Move{Unit: MoveLine, Dir: DirDown}), (Pos{Row: 2, GraphemeCol: 1}); got != want {
		t.Fatalf("down on last line: got %v, want %v", got, want)
	}
}

func TestDocument_MovePage_ClampsToDocument(t *testing.T) {
	d := New(numberedLines(50))

	cases := []struct {
		from Pos
		dir  MoveDir
		n    int
		want Pos
	}{
		{from: Pos{Row: 0}, dir: DirDown, n: 20, want: Pos{Row: 20}},
		{from: Pos{Row: 40}, dir: DirDown, n: 20, want: Pos{Row: 49}},
		{from: Pos{Row: 30}, dir: DirUp, n: 20, want: Pos{Row: 10}},
		{from: Pos{Row: 5}, dir: DirUp, n: 20, want: Pos{Row: 0}},
		{from: Pos{Row: 5}, dir: DirDown, n: 0, want: Pos{Row: 6}},
	}
	for _, tc := range cases {
		got := d.Move(tc.from, Move{Unit: MovePage, Dir: tc.dir, Count: tc.n})
		if got != tc.want {
			t.Fatalf("page %v from %v by %d: got %v, want %v", tc.dir, tc.from, tc.n, got, tc.want)
		}
	}
}

func TestDocument_MoveDoc_StartEnd(t *testing.T) {
	d := New("a\nbc")

	if got := d.Move(Pos{Row: 1, GraphemeCol: 1}, Move{Unit: MoveDoc, Dir: DirHome}); got != (Pos{}) {
		t.Fatalf("doc start: got %v, want 0:0", got)
	}
	if got, want := d.Move(Pos{}, Move{Unit: MoveDoc, Dir: DirEnd}), (Pos{Row: 1, GraphemeCol: 2}); got != want {
		t.Fatalf("doc end: got %v, want %v", got, want)
	}
}

func TestDocument_Move_ClampsStalePosition(t *testing.T) {
	d := New("one\ntwo")

	got := d.Move(Pos{Row: 10, GraphemeCol: 10}, Move{Unit: MoveGrapheme, Dir: DirLeft})
	if want := (Pos{Row: 1, GraphemeCol: 2}); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
