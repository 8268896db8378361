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
	"math/rand"
	"time"
)

/*

Puzzle generation

*/

// A Difficulty tags how hard a generated puzzle should be.  The
// tag controls exactly one thing: how many cells are blanked out
// of the solved board the generation starts from.
type Difficulty string

// The known difficulty tags.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// removalCounts is the policy table mapping each difficulty to
// the number of cells blanked out of the 81 in a solved board.
var removalCounts = map[Difficulty]int{
	Easy:   35,
	Medium: 45,
	Hard:   55,
}

// RemovalCount returns the blanked-cell count for a difficulty.
// Unrecognized tags are not an error; they get medium's count.
func (d Difficulty) RemovalCount() int {
	if count, ok := removalCounts[d]; ok {
		return count
	}
	return removalCounts[Medium]
}

// NewSource returns the unseeded random source used on the
// production generation path.  Tests pass their own seeded
// source instead, which makes generation, removal, and hint
// selection reproducible.
func NewSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Generate produces a playable puzzle for the given difficulty:
// a fully solved board, built by the randomized solver from
// empty, with the difficulty's removal count of cells blanked at
// uniformly sampled positions.  The returned board is the
// puzzle's initial state; callers keep their own snapshot of it
// to tell fixed cells from player-editable ones.
//
// No symmetry is imposed on the removals, and uniqueness of the
// completion is deliberately not verified: the board the
// generation started from is one valid completion, not
// necessarily the only one, so solving a generated puzzle may
// legitimately arrive somewhere else.
func Generate(rng *rand.Rand, difficulty Difficulty) Board {
	var b Board
	b.SolveRandom(rng) // an empty board always completes
	removed, target := 0, difficulty.RemovalCount()
	for removed < target {
		row, col := rng.Intn(Side), rng.Intn(Side)
		if b[row][col] != 0 {
			b[row][col] = 0
			removed++
		}
	}
	return b
}

/*

Hints

*/

// Hint picks one empty cell uniformly at random and returns the
// value that cell holds in a completion of the board, found by
// running the deterministic solver on a throwaway copy.  ok is
// false when the board has no empty cells or no completion
// exists; a caller that needs to tell "finished" apart from
// "corrupted" checks FindEmpty itself before asking.  The
// receiving board is never modified; applying the hint is the
// caller's business.
func (b *Board) Hint(rng *rand.Rand) (Hint, bool) {
	empties := b.Empties()
	if len(empties) == 0 {
		return Hint{}, false
	}
	cell := empties[rng.Intn(len(empties))]
	work := *b
	if !work.Solve() {
		return Hint{}, false
	}
	return Hint{Row: cell.Row, Col: cell.Col, Num: work[cell.Row][cell.Col]}, true
}
