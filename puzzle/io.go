// sudoku - a web-based Sudoku puzzle generator and solver.
// Copyright (C) 2024 A. Bahdez.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

package puzzle

import (
	"fmt"
)

/*

Pretty-printed boards in strings, for the CLI and debugging.

*/

// vstr: the print form of a cell value.
func vstr(i int) string {
	if i < 0 || i > Side {
		return "?"
	}
	if i == 0 {
		return "_"
	}
	return fmt.Sprint(i)
}

// String gives a pretty-printed grid view of the board.  Columns
// are headed 0-8 and rows prefixed a-i, with box boundaries
// drawn, so cells are easy to name when reading a dump.
func (b *Board) String() (result string) {
	if b == nil {
		return
	}
	// first put out the header
	result += " "
	for c := 0; c < Side; c++ {
		if c%BoxSide == 0 {
			result += "|"
		} else {
			result += " "
		}
		result += fmt.Sprintf("%2d ", c)
	}
	result += "\n"
	// next are the rows, with a separator above each box band
	for r, rowhdr := 0, 'a'; r < Side; r, rowhdr = r+1, rowhdr+1 {
		if r%BoxSide == 0 {
			result += " "
			for c := 0; c < Side; c++ {
				result += "+---"
			}
			result += "\n"
		}
		result += string(rowhdr)
		for c := 0; c < Side; c++ {
			if c%BoxSide == 0 {
				result += "|"
			} else {
				result += " "
			}
			result += fmt.Sprintf(" %s ", vstr(b[r][c]))
		}
		result += "\n"
	}
	return
}

// ConflictsString formats a conflict set the way the web client
// keys its highlights: one "row-col" tag per conflicted cell.
func ConflictsString(cells []Cell) (result string) {
	for i, cell := range cells {
		if i > 0 {
			result += " "
		}
		result += fmt.Sprintf("%d-%d", cell.Row, cell.Col)
	}
	return
}
