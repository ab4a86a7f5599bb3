package grapheme

import (
	"slices"
	"testing"
)

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "\U0001F44D\U0001F3FD" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if j := Join(got); j != text {
		t.Fatalf("join=%q, want %q", j, text)
	}
	if Split("") != nil {
		t.Fatalf("split of empty text must be nil")
	}
}

func TestCellWidth(t *testing.T) {
	cases := []struct {
		cluster  string
		col, tab int
		want     int
	}{
		{cluster: "a", want: 1},
		{cluster: "世", want: 2},
		{cluster: "\t", col: 0, tab: 4, want: 4},
		{cluster: "\t", col: 3, tab: 4, want: 1},
		{cluster: "\t", col: 5, tab: 0, want: 3},
	}
	for _, tc := range cases {
		if got := CellWidth(tc.cluster, tc.col, tc.tab); got != tc.want {
			t.Fatalf("CellWidth(%q, %d, %d)=%d, want %d", tc.cluster, tc.col, tc.tab, got, tc.want)
		}
	}
}

func TestExpand_TabsAndOffsets(t *testing.T) {
	text, offsets := Expand(Split("a\tb世"), 4, -1)
	if want := "a   b世"; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	if want := []int{0, 1, 4, 5, 7}; !slices.Equal(offsets, want) {
		t.Fatalf("offsets=%v, want %v", offsets, want)
	}
}

func TestExpand_StopsAtLimitWithoutSplittingWideCluster(t *testing.T) {
	text, offsets := Expand(Split("ab世c"), 4, 3)
	if want := "ab"; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
	if want := []int{0, 1, 2}; !slices.Equal(offsets, want) {
		t.Fatalf("offsets=%v, want %v", offsets, want)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		text string
		max  int
		want string
	}{
		{text: "hello", max: 10, want: "hello"},
		{text: "hello", max: 5, want: "hello"},
		{text: "hello world", max: 6, want: "hello…"},
		{text: "hello", max: 1, want: "h"},
		{text: "hello", max: 0, want: ""},
	}
	for _, tc := range cases {
		if got := Truncate(tc.text, tc.max, "…"); got != tc.want {
			t.Fatalf("Truncate(%q, %d)=%q, want %q", tc.text, tc.max, got, tc.want)
		}
	}
}
