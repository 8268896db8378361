package puzzle

import (
	"math/rand"
)

/*

Sudoku board solver

The solver is a straightforward depth-first backtracking search:

1. Find the first empty cell in reading order.  If there is
none, the board is solved.

2. Try the candidate values one at a time.  For each candidate
that is legal per the constraint check, place it and recurse.

3. If the recursion fails, take the candidate back out and try
the next one.  If all candidates fail, report failure, which
makes the caller take back its own placement and move on.

Each recursive step fills exactly one empty cell, so the depth
of the search is bounded by the cell count and there is no cycle
to guard against.  Only legality is checked when choosing
candidates; correctness needs no cell-ordering heuristic, though
the first-empty-cell order works well on Sudoku's constraint
density.

The same search does double duty: with candidates in ascending
order it is the deterministic solver used for solving and hints,
and with candidates in a freshly shuffled order at every cell it
fills an empty board into a randomly-varying complete solution,
which is how puzzle generation starts.

*/

// Solve fills the board's empty cells in place, trying candidate
// values in ascending order, and reports whether a completion
// was found.  On failure the board is left exactly as it was
// before the call: the backtracking undoes every trial placement
// on the way out.  Exhaustion is an expected outcome, not an
// error.
func (b *Board) Solve() bool {
	return b.backtrack(nil)
}

// SolveRandom is Solve with the candidate order at each cell
// drawn as a fresh random permutation of 1-9.  Invoked on an
// empty board it produces a full, randomly-varying solved board.
func (b *Board) SolveRandom(rng *rand.Rand) bool {
	return b.backtrack(rng)
}

// backtrack runs the search.  A nil rng means ascending
// candidate order.
func (b *Board) backtrack(rng *rand.Rand) bool {
	row, col, ok := b.FindEmpty()
	if !ok {
		return true // no empty cells left: solved
	}
	candidates := [Side]int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if rng != nil {
		rng.Shuffle(Side, func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}
	for _, val := range candidates {
		if !b.IsValid(row, col, val) {
			continue
		}
		b[row][col] = val
		if b.backtrack(rng) {
			return true
		}
		b[row][col] = 0
	}
	return false
}
