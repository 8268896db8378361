package puzzle

import (
	"math/rand"
	"testing"
)

func TestSolveClassic(t *testing.T) {
	b := mustBoard(t, classicValues)
	if !b.Solve() {
		t.Fatalf("TestSolveClassic: solver failed on a solvable board")
	}
	expected := mustBoard(t, classicSolvedValues)
	if b != expected {
		t.Errorf("TestSolveClassic: got\n%v\nexpected\n%v", &b, &expected)
	}
}

func TestSolveEmpty(t *testing.T) {
	var b Board
	if !b.Solve() {
		t.Fatalf("TestSolveEmpty: solver failed on an empty board")
	}
	if !b.Complete() {
		t.Errorf("TestSolveEmpty: result is not a complete valid board:\n%v", &b)
	}
	// ascending candidate order fills the first row 1-9
	for c := 0; c < Side; c++ {
		if b[0][c] != c+1 {
			t.Errorf("TestSolveEmpty: first row is not ascending at col %d: %d", c, b[0][c])
		}
	}
}

func TestSolveSolved(t *testing.T) {
	b := mustBoard(t, classicSolvedValues)
	if !b.Solve() {
		t.Errorf("TestSolveSolved: solver failed on an already-solved board")
	}
	expected := mustBoard(t, classicSolvedValues)
	if b != expected {
		t.Errorf("TestSolveSolved: solver modified a solved board:\n%v", &b)
	}
}

func TestSolveUnsolvable(t *testing.T) {
	b := unsolvableBoard(t)
	before := b
	if b.Solve() {
		t.Fatalf("TestSolveUnsolvable: solver claimed success on an unsolvable board:\n%v", &b)
	}
	if b != before {
		t.Errorf("TestSolveUnsolvable: failed solve did not restore the board:\ngot\n%v\nexpected\n%v",
			&b, &before)
	}
}

func TestSolveRandom(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		var b Board
		if !b.SolveRandom(rand.New(rand.NewSource(seed))) {
			t.Fatalf("TestSolveRandom seed %d: failed on an empty board", seed)
		}
		if !b.Complete() {
			t.Errorf("TestSolveRandom seed %d: result is not a complete valid board:\n%v", seed, &b)
		}
	}
}

func TestSolveRandomDeterministic(t *testing.T) {
	var b1, b2, b3 Board
	b1.SolveRandom(rand.New(rand.NewSource(11)))
	b2.SolveRandom(rand.New(rand.NewSource(11)))
	b3.SolveRandom(rand.New(rand.NewSource(12)))
	if b1 != b2 {
		t.Errorf("TestSolveRandomDeterministic: same seed gave different boards:\n%v\n%v", &b1, &b2)
	}
	if b1 == b3 {
		t.Errorf("TestSolveRandomDeterministic: different seeds gave the same board:\n%v", &b1)
	}
}

func TestSolveRandomPartial(t *testing.T) {
	// the randomized solver honors existing entries too
	b := mustBoard(t, classicValues)
	if !b.SolveRandom(rand.New(rand.NewSource(7))) {
		t.Fatalf("TestSolveRandomPartial: failed on a solvable board")
	}
	// the classic puzzle has a unique solution, so random order
	// must arrive at the same place
	expected := mustBoard(t, classicSolvedValues)
	if b != expected {
		t.Errorf("TestSolveRandomPartial: got\n%v\nexpected\n%v", &b, &expected)
	}
}
