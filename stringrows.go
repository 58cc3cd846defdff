package gridview

import "strings"

// RemoveEmptyStringRows removes rows at the top and bottom
// where every cell is empty or white space.
func RemoveEmptyStringRows(rows [][]string) [][]string {
	for len(rows) > 0 && isEmptyStringRow(rows[0]) {
		rows = rows[1:]
	}
	for len(rows) > 0 && isEmptyStringRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func isEmptyStringRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// RemoveEmptyStringColumns removes columns at the left
// where every cell is empty or white space,
// truncates trailing empty cells of all rows,
// and returns the resulting number of columns.
// The rows are modified in place.
func RemoveEmptyStringColumns(rows [][]string) (numCols int) {
	leading := -1
	for _, row := range rows {
		n := 0
		for n < len(row) && strings.TrimSpace(row[n]) == "" {
			n++
		}
		if n < len(row) && (leading < 0 || n < leading) {
			leading = n
		}
	}
	if leading < 0 {
		for i := range rows {
			rows[i] = rows[i][:0]
		}
		return 0
	}
	for i, row := range rows {
		if leading >= len(row) {
			row = row[:0]
		} else {
			row = row[leading:]
		}
		last := len(row)
		for last > 0 && strings.TrimSpace(row[last-1]) == "" {
			last--
		}
		rows[i] = row[:last]
		numCols = max(numCols, last)
	}
	return numCols
}
