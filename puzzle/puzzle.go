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

// Package puzzle provides the Sudoku board model and the
// operations on it: constraint checking, conflict detection,
// backtracking solving, randomized puzzle generation, and hint
// derivation.  It also provides a RESTful wrapper over these
// operations, so it's easy to build web services on top of them.
//
// Boards are 9x9 grids of cell values.  Empty cells hold 0;
// filled cells hold a value between 1 and 9.  Rows and columns
// are zero-indexed, top-to-bottom and left-to-right.  Boards are
// value types: assigning one makes a deep copy, so operations
// that must not perturb caller state (hint lookups, validity
// probes) simply work on a copy.
//
// The board a player starts from is remembered as an initial
// board; cells that were given in the initial board are fixed
// and may never be reassigned during play.  The engine does not
// keep any hidden state between calls: callers own their boards
// and pass them explicitly.
package puzzle

import (
	"fmt"
)

// Geometry of the standard board.
const (
	Side    = 9 // cells per row, column, and box
	BoxSide = 3 // cells per box side
	Cells   = Side * Side
)

// A Board is a 9x9 Sudoku grid in row-major order.  The zero
// value is an all-empty board.
type Board [Side][Side]int

// A Cell addresses one square of a Board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// A Hint pairs a currently-empty cell with the value that cell
// holds in a valid completion of the board.
type Hint struct {
	Row int `json:"row"`
	Col int `json:"col"`
	Num int `json:"num"`
}

// New creates a Board from a flat row-major slice of 81 values.
// Input values of 0 mean an empty cell.  Gives an Error if the
// slice has the wrong length or a value is out of range.
func New(values []int) (Board, error) {
	var b Board
	if len(values) != Cells {
		err := Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: BoardSizeAttribute,
			Condition: WrongBoardSizeCondition,
			Values:    ErrorData{len(values), Cells},
		}
		err.Message = err.Error()
		return b, err
	}
	for i, v := range values {
		if v < 0 || v > Side {
			return b, rangeError(ValueAttribute, v, 0, Side)
		}
		b[i/Side][i%Side] = v
	}
	return b, nil
}

// Values returns the board's cells as a flat row-major slice.
// The result shares no storage with the board.
func (b *Board) Values() []int {
	vs := make([]int, 0, Cells)
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			vs = append(vs, b[r][c])
		}
	}
	return vs
}

// FindEmpty locates the first empty cell in row-major scan
// order.  ok is false when the board is full.  Callers that need
// to distinguish "board complete" from "board unsolvable" after
// a failed hint lookup should check this first.
func (b *Board) FindEmpty() (row, col int, ok bool) {
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Empties returns the addresses of all empty cells, in row-major
// order.
func (b *Board) Empties() []Cell {
	var cells []Cell
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			if b[r][c] == 0 {
				cells = append(cells, Cell{r, c})
			}
		}
	}
	return cells
}

// CountFilled returns the number of nonzero cells.
func (b *Board) CountFilled() int {
	count := 0
	for r := 0; r < Side; r++ {
		for c := 0; c < Side; c++ {
			if b[r][c] != 0 {
				count++
			}
		}
	}
	return count
}

// Assign sets a cell during play.  Cells that were given in the
// initial board are fixed and may not be reassigned; a val of 0
// erases a previous entry.  Gives an Error for out-of-range
// arguments or fixed cells.  Writing a conflicting value is not
// an error: players are allowed to leave the board inconsistent,
// and Conflicts reports it.
func (b *Board) Assign(initial *Board, row, col, val int) error {
	if row < 0 || row >= Side {
		return rangeError(RowAttribute, row, 0, Side-1)
	}
	if col < 0 || col >= Side {
		return rangeError(ColAttribute, col, 0, Side-1)
	}
	if val < 0 || val > Side {
		return rangeError(ValueAttribute, val, 0, Side)
	}
	if initial != nil && initial[row][col] != 0 {
		err := Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: CellAttribute,
			Condition: FixedCellCondition,
			Values:    ErrorData{fmt.Sprintf("%d,%d", row, col)},
		}
		err.Message = err.Error()
		return err
	}
	b[row][col] = val
	return nil
}
