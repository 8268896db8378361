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

/*

Constraint checking and conflict detection

*/

// IsValid reports whether val could legally occupy (row, col):
// false iff val already appears elsewhere in row, in col, or in
// the 3x3 box containing the cell.  The cell's own position is
// excluded from the scan, so the same check answers both "is
// this candidate placeable here" for an empty cell and "is this
// already-placed value legitimate" for a filled one.  Pure
// function of the board passed in; no side effects.
func (b *Board) IsValid(row, col, val int) bool {
	for i := 0; i < Side; i++ {
		if i != col && b[row][i] == val {
			return false
		}
		if i != row && b[i][col] == val {
			return false
		}
	}
	baseRow, baseCol := row-row%BoxSide, col-col%BoxSide
	for r := baseRow; r < baseRow+BoxSide; r++ {
		for c := baseCol; c < baseCol+BoxSide; c++ {
			if (r != row || c != col) && b[r][c] == val {
				return false
			}
		}
	}
	return true
}

// Conflicts collects every filled cell whose value duplicates a
// peer in its row, column, or box.  Both cells of a duplicate
// pair are reported.  The result is recomputed fresh on every
// call; nothing is cached and the board is never modified.
func (b *Board) Conflicts() []Cell {
	var cells []Cell
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			if b[r][c] != 0 && !b.IsValid(r, c, b[r][c]) {
				cells = append(cells, Cell{r, c})
			}
		}
	}
	return cells
}

// Valid is the whole-board predicate form of Conflicts: true iff
// no filled cell conflicts with a peer.  Unlike Conflicts it
// allocates nothing.
func (b *Board) Valid() bool {
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			if b[r][c] != 0 && !b.IsValid(r, c, b[r][c]) {
				return false
			}
		}
	}
	return true
}

// Complete reports whether the board is full and conflict-free.
func (b *Board) Complete() bool {
	if _, _, ok := b.FindEmpty(); ok {
		return false
	}
	return b.Valid()
}
