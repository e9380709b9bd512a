package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// column is one text-table column; numeric columns align right.
type column struct {
	title string
	right bool
}

func columns(titles []string, rightAligned ...int) []column {
	cols := make([]column, len(titles))
	for i, title := range titles {
		cols[i].title = title
	}
	for _, i := range rightAligned {
		cols[i].right = true
	}
	return cols
}

// formatTable lays rows out under cols, sizing each column by display width.
func formatTable(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c.title)
	}
	for _, row := range rows {
		for i := range cols {
			widths[i] = max(widths[i], runewidth.StringWidth(cell(row, i)))
		}
	}

	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
	}
	lines := []string{joinCells(cols, widths, titles)}
	for _, row := range rows {
		lines = append(lines, joinCells(cols, widths, row))
	}
	return lines
}

func joinCells(cols []column, widths []int, row []string) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		if c.right {
			cells[i] = runewidth.FillLeft(cell(row, i), widths[i])
		} else {
			cells[i] = runewidth.FillRight(cell(row, i), widths[i])
		}
	}
	return strings.Join(cells, " ")
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
