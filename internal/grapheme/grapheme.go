// Package grapheme provides grapheme-cluster and terminal-cell helpers for
// the document model and the editor renderer.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
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

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	return strings.Join(clusters, "")
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// CellWidth returns the terminal-cell width of cluster when it starts at
// visual column col. Tabs advance to the next multiple of tabWidth.
func CellWidth(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - col%tabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	return max(w, 0)
}

// Expand renders clusters into display text with tabs expanded to spaces. It
// stops before the first cluster that would exceed maxCells; a negative
// maxCells means no limit.
//
// offsets[i] is the visual column cluster i starts at, for every rendered
// cluster plus one trailing entry for the end of the rendered text.
func Expand(clusters []string, tabWidth, maxCells int) (text string, offsets []int) {
	var sb strings.Builder
	offsets = make([]int, 0, len(clusters)+1)
	col := 0
	for _, c := range clusters {
		w := CellWidth(c, col, tabWidth)
		if maxCells >= 0 && col+w > maxCells {
			break
		}
		offsets = append(offsets, col)
		if c == "\t" {
			sb.WriteString(strings.Repeat(" ", w))
		} else {
			sb.WriteString(c)
		}
		col += w
	}
	offsets = append(offsets, col)
	return sb.String(), offsets
}

// Truncate shortens text to at most maxCells cells, appending tail when
// anything was cut. The tail counts towards maxCells.
func Truncate(text string, maxCells int, tail string) string {
	if maxCells <= 0 {
		return ""
	}
	if uniseg.StringWidth(text) <= maxCells {
		return text
	}
	tailW := uniseg.StringWidth(tail)
	if tailW >= maxCells {
		tail, tailW = "", 0
	}
	out, _ := Expand(Split(text), 0, maxCells-tailW)
	return out + tail
}
