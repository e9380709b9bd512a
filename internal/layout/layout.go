// Package layout packs a word sequence into fixed-width display rows.
package layout

import "github.com/mattn/go-runewidth"

// Placement locates one word inside the row grid.
type Placement struct {
	Row   int
	First bool
	X     int
}

// Assignment maps each word index to its placement.
type Assignment struct {
	Placements []Placement
	Rows       int
	MaxWidth   int
}

// Layout greedily wraps words into rows of at most maxWidth columns of word
// text. Separators are not counted against the budget. A word that does
// not fit starts a new row; a word wider than maxWidth gets a row of its
// own. X offsets start at margin and advance by the word width plus one.
func Layout(words []string, maxWidth, margin int) Assignment {
	out := Assignment{
		Placements: make([]Placement, len(words)),
		MaxWidth:   maxWidth,
	}
	if len(words) == 0 {
		return out
	}
	row := 0
	rowLen := 0
	x := margin
	for i, word := range words {
		w := WordWidth(word)
		first := i == 0
		if rowLen > 0 && rowLen+w > maxWidth {
			row++
			rowLen = 0
			x = margin
			first = true
		}
		rowLen += w
		out.Placements[i] = Placement{Row: row, First: first, X: x}
		x += w + 1
	}
	out.Rows = row + 1
	return out
}

// WordWidth returns the display width of a word.
func WordWidth(word string) int {
	return runewidth.StringWidth(word)
}

// RowOf returns the row holding word i, or Rows when i is past the end.
func (a Assignment) RowOf(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(a.Placements) {
		return a.Rows
	}
	return a.Placements[i].Row
}

// IsFirstInRow reports whether word i opens its row.
func (a Assignment) IsFirstInRow(i int) bool {
	if i < 0 || i >= len(a.Placements) {
		return false
	}
	return a.Placements[i].First
}

// RowSpan returns the half-open word index range [start, end) of row.
func (a Assignment) RowSpan(row int) (start, end int) {
	start = -1
	for i, p := range a.Placements {
		if p.Row < row {
			continue
		}
		if p.Row > row {
			if start == -1 {
				return 0, 0
			}
			return start, i
		}
		if start == -1 {
			start = i
		}
	}
	if start == -1 {
		return 0, 0
	}
	return start, len(a.Placements)
}
