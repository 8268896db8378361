package puzzle

import (
	"reflect"
	"testing"
)

/*

Test Values

*/

var (
	// a well-known published puzzle and its (unique) solution
	classicValues = []int{
		5, 3, 0, 0, 7, 0, 0, 0, 0,
		6, 0, 0, 1, 9, 5, 0, 0, 0,
		0, 9, 8, 0, 0, 0, 0, 6, 0,
		8, 0, 0, 0, 6, 0, 0, 0, 3,
		4, 0, 0, 8, 0, 3, 0, 0, 1,
		7, 0, 0, 0, 2, 0, 0, 0, 6,
		0, 6, 0, 0, 0, 0, 2, 8, 0,
		0, 0, 0, 4, 1, 9, 0, 0, 5,
		0, 0, 0, 0, 8, 0, 0, 7, 9,
	}
	classicSolvedValues = []int{
		5, 3, 4, 6, 7, 8, 9, 1, 2,
		6, 7, 2, 1, 9, 5, 3, 4, 8,
		1, 9, 8, 3, 4, 2, 5, 6, 7,
		8, 5, 9, 7, 6, 1, 4, 2, 3,
		4, 2, 6, 8, 5, 3, 7, 9, 1,
		7, 1, 3, 9, 2, 4, 8, 5, 6,
		9, 6, 1, 5, 3, 7, 2, 8, 4,
		2, 8, 7, 4, 1, 9, 6, 3, 5,
		3, 4, 5, 2, 8, 6, 1, 7, 9,
	}
)

// mustBoard builds a board from flat values, failing the test on
// any construction error.
func mustBoard(t *testing.T, values []int) Board {
	t.Helper()
	b, e := New(values)
	if e != nil {
		t.Fatalf("Failed to create test board: %v", e)
	}
	return b
}

// unsolvableBoard returns a board whose first empty cell, (0,8),
// has no legal candidate: 1-8 fill the rest of row 0 and 9 sits
// below it in column 8.
func unsolvableBoard(t *testing.T) Board {
	t.Helper()
	var b Board
	for c := 0; c < 8; c++ {
		b[0][c] = c + 1
	}
	b[1][8] = 9
	return b
}

func TestNew(t *testing.T) {
	b := mustBoard(t, classicValues)
	if b[0][0] != 5 || b[0][4] != 7 || b[8][8] != 9 || b[0][2] != 0 {
		t.Errorf("TestNew: misplaced values in constructed board:\n%v", &b)
	}
	if _, e := New(classicValues[1:]); e == nil {
		t.Errorf("TestNew: no error for a short value slice")
	}
	bad := append([]int(nil), classicValues...)
	bad[17] = 10
	if _, e := New(bad); e == nil {
		t.Errorf("TestNew: no error for an out-of-range value")
	}
	bad[17] = -1
	if _, e := New(bad); e == nil {
		t.Errorf("TestNew: no error for a negative value")
	}
}

func TestValues(t *testing.T) {
	b := mustBoard(t, classicValues)
	vs := b.Values()
	if !reflect.DeepEqual(vs, classicValues) {
		t.Errorf("TestValues: round trip produced %v (expected %v)", vs, classicValues)
	}
	// the returned slice must not alias the board
	vs[0] = 9
	if b[0][0] != 5 {
		t.Errorf("TestValues: returned slice shares storage with the board")
	}
}

func TestFindEmpty(t *testing.T) {
	b := mustBoard(t, classicValues)
	if r, c, ok := b.FindEmpty(); !ok || r != 0 || c != 2 {
		t.Errorf("TestFindEmpty: got (%d,%d,%v), expected (0,2,true)", r, c, ok)
	}
	full := mustBoard(t, classicSolvedValues)
	if _, _, ok := full.FindEmpty(); ok {
		t.Errorf("TestFindEmpty: found an empty cell in a full board")
	}
}

func TestEmptiesAndCount(t *testing.T) {
	b := mustBoard(t, classicValues)
	empties := b.Empties()
	if len(empties)+b.CountFilled() != Cells {
		t.Errorf("TestEmptiesAndCount: %d empty + %d filled != %d",
			len(empties), b.CountFilled(), Cells)
	}
	if empties[0] != (Cell{0, 2}) {
		t.Errorf("TestEmptiesAndCount: first empty is %v, expected {0 2}", empties[0])
	}
	full := mustBoard(t, classicSolvedValues)
	if es := full.Empties(); len(es) != 0 {
		t.Errorf("TestEmptiesAndCount: full board has empties %v", es)
	}
	if full.CountFilled() != Cells {
		t.Errorf("TestEmptiesAndCount: full board count is %d", full.CountFilled())
	}
}

func TestAssign(t *testing.T) {
	b := mustBoard(t, classicValues)
	initial := b
	if e := b.Assign(&initial, 0, 2, 4); e != nil {
		t.Errorf("TestAssign: assign to empty cell failed: %v", e)
	}
	if b[0][2] != 4 {
		t.Errorf("TestAssign: assigned cell holds %d, expected 4", b[0][2])
	}
	if e := b.Assign(&initial, 0, 2, 0); e != nil {
		t.Errorf("TestAssign: erase failed: %v", e)
	}
	if b[0][2] != 0 {
		t.Errorf("TestAssign: erased cell holds %d", b[0][2])
	}
	// fixed cells are never writable
	if e := b.Assign(&initial, 0, 0, 1); e == nil {
		t.Errorf("TestAssign: no error assigning a fixed cell")
	}
	if b[0][0] != 5 {
		t.Errorf("TestAssign: fixed cell was modified to %d", b[0][0])
	}
	// out-of-range arguments
	for i, args := range [][3]int{{-1, 0, 1}, {9, 0, 1}, {0, -1, 1}, {0, 9, 1}, {0, 2, 10}, {0, 2, -1}} {
		if e := b.Assign(&initial, args[0], args[1], args[2]); e == nil {
			t.Errorf("TestAssign case %d: no error for arguments %v", i+1, args)
		}
	}
}
