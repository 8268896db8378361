package puzzle

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateHandler(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/generate", strings.NewReader(`{"difficulty":"easy"}`))
	w := httptest.NewRecorder()
	gen, e := GenerateHandler(w, r)
	if e != nil {
		t.Fatalf("TestGenerateHandler: handler failed: %v", e)
	}
	if w.Code != 200 {
		t.Errorf("TestGenerateHandler: status %d, expected 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("TestGenerateHandler: content type %q", ct)
	}
	if gen.Difficulty != Easy {
		t.Errorf("TestGenerateHandler: difficulty %q, expected easy", gen.Difficulty)
	}
	if got := gen.Board.CountFilled(); got != Cells-Easy.RemovalCount() {
		t.Errorf("TestGenerateHandler: %d filled cells, expected %d",
			got, Cells-Easy.RemovalCount())
	}
	var state State
	if e := json.NewDecoder(w.Body).Decode(&state); e != nil {
		t.Fatalf("TestGenerateHandler: can't decode response: %v", e)
	}
	if state.Values != gen.Board {
		t.Errorf("TestGenerateHandler: response board differs from returned board")
	}
	if state.Initial == nil || *state.Initial != gen.Board {
		t.Errorf("TestGenerateHandler: initial board not the puzzle itself")
	}
	if len(state.Conflicts) != 0 || state.Complete {
		t.Errorf("TestGenerateHandler: fresh puzzle state %+v", state)
	}
}

func TestGenerateHandlerBadBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/generate", strings.NewReader("{"))
	w := httptest.NewRecorder()
	if _, e := GenerateHandler(w, r); e == nil {
		t.Errorf("TestGenerateHandlerBadBody: no error for a malformed body")
	}
	if w.Code != 400 {
		t.Errorf("TestGenerateHandlerBadBody: status %d, expected 400", w.Code)
	}
}

func TestStateHandler(t *testing.T) {
	b := mustBoard(t, classicValues)
	initial := b
	r := httptest.NewRequest("GET", "/api/state", nil)
	w := httptest.NewRecorder()
	if e := b.StateHandler(&initial, w, r); e != nil {
		t.Fatalf("TestStateHandler: handler failed: %v", e)
	}
	var state State
	if e := json.NewDecoder(w.Body).Decode(&state); e != nil {
		t.Fatalf("TestStateHandler: can't decode response: %v", e)
	}
	if state.Values != b || state.Initial == nil || *state.Initial != initial {
		t.Errorf("TestStateHandler: response state %+v", state)
	}
	if state.Complete {
		t.Errorf("TestStateHandler: partial board reported complete")
	}
}

func TestConflictsHandler(t *testing.T) {
	b := mustBoard(t, classicValues)
	r := httptest.NewRequest("GET", "/api/conflicts", nil)
	w := httptest.NewRecorder()
	if e := b.ConflictsHandler(w, r); e != nil {
		t.Fatalf("TestConflictsHandler: handler failed: %v", e)
	}
	// a conflict-free board sends an empty array, not null
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("TestConflictsHandler: clean board sent %q, expected []", body)
	}

	b[0][3] = 5
	w = httptest.NewRecorder()
	if e := b.ConflictsHandler(w, r); e != nil {
		t.Fatalf("TestConflictsHandler: handler failed: %v", e)
	}
	var cells []Cell
	if e := json.NewDecoder(w.Body).Decode(&cells); e != nil {
		t.Fatalf("TestConflictsHandler: can't decode response: %v", e)
	}
	if len(cells) != 3 || cells[0] != (Cell{0, 0}) || cells[1] != (Cell{0, 3}) || cells[2] != (Cell{1, 5}) {
		t.Errorf("TestConflictsHandler: got %v", cells)
	}
}

func TestSolveHandler(t *testing.T) {
	b := mustBoard(t, classicValues)
	initial := mustBoard(t, classicValues)
	r := httptest.NewRequest("POST", "/api/solve", nil)
	w := httptest.NewRecorder()
	solved, e := b.SolveHandler(&initial, w, r)
	if e != nil {
		t.Fatalf("TestSolveHandler: handler failed: %v", e)
	}
	if !solved {
		t.Fatalf("TestSolveHandler: solvable board reported unsolvable")
	}
	var result SolveResult
	if e := json.NewDecoder(w.Body).Decode(&result); e != nil {
		t.Fatalf("TestSolveHandler: can't decode response: %v", e)
	}
	expected := mustBoard(t, classicSolvedValues)
	if !result.Solved || result.State.Values != expected || !result.State.Complete {
		t.Errorf("TestSolveHandler: response %+v", result)
	}
	if b != expected {
		t.Errorf("TestSolveHandler: receiving board not solved in place")
	}
}

func TestSolveHandlerUnsolvable(t *testing.T) {
	b := unsolvableBoard(t)
	before := b
	r := httptest.NewRequest("POST", "/api/solve", nil)
	w := httptest.NewRecorder()
	solved, e := b.SolveHandler(nil, w, r)
	if e != nil {
		t.Fatalf("TestSolveHandlerUnsolvable: handler failed: %v", e)
	}
	if solved {
		t.Errorf("TestSolveHandlerUnsolvable: claimed success")
	}
	if w.Code != 200 {
		t.Errorf("TestSolveHandlerUnsolvable: status %d, expected 200", w.Code)
	}
	var result SolveResult
	if e := json.NewDecoder(w.Body).Decode(&result); e != nil {
		t.Fatalf("TestSolveHandlerUnsolvable: can't decode response: %v", e)
	}
	if result.Solved || result.State.Values != before {
		t.Errorf("TestSolveHandlerUnsolvable: response %+v", result)
	}
	if b != before {
		t.Errorf("TestSolveHandlerUnsolvable: board modified by failed solve")
	}
}

func TestHintHandler(t *testing.T) {
	b := mustBoard(t, classicSolvedValues)
	b[4][4] = 0
	r := httptest.NewRequest("GET", "/api/hint", nil)
	w := httptest.NewRecorder()
	if e := b.HintHandler(w, r); e != nil {
		t.Fatalf("TestHintHandler: handler failed: %v", e)
	}
	var result HintResult
	if e := json.NewDecoder(w.Body).Decode(&result); e != nil {
		t.Fatalf("TestHintHandler: can't decode response: %v", e)
	}
	if result.Hint == nil || *result.Hint != (Hint{Row: 4, Col: 4, Num: 5}) {
		t.Errorf("TestHintHandler: got %+v, expected {4 4 5}", result.Hint)
	}

	// a full board gets a null hint, still as a 200
	full := mustBoard(t, classicSolvedValues)
	w = httptest.NewRecorder()
	if e := full.HintHandler(w, r); e != nil {
		t.Fatalf("TestHintHandler: handler failed on a full board: %v", e)
	}
	if w.Code != 200 {
		t.Errorf("TestHintHandler: status %d, expected 200", w.Code)
	}
	result = HintResult{}
	if e := json.NewDecoder(w.Body).Decode(&result); e != nil {
		t.Fatalf("TestHintHandler: can't decode response: %v", e)
	}
	if result.Hint != nil {
		t.Errorf("TestHintHandler: full board got hint %+v", result.Hint)
	}
}

func TestAssignHandler(t *testing.T) {
	b := mustBoard(t, classicValues)
	initial := mustBoard(t, classicValues)
	r := httptest.NewRequest("POST", "/api/assign", strings.NewReader(`{"row":0,"col":2,"num":4}`))
	w := httptest.NewRecorder()
	state, e := b.AssignHandler(&initial, w, r)
	if e != nil {
		t.Fatalf("TestAssignHandler: handler failed: %v", e)
	}
	if w.Code != 200 {
		t.Errorf("TestAssignHandler: status %d, expected 200", w.Code)
	}
	if b[0][2] != 4 {
		t.Errorf("TestAssignHandler: cell holds %d, expected 4", b[0][2])
	}
	if state == nil || state.Values != b {
		t.Errorf("TestAssignHandler: returned state %+v", state)
	}
}

func TestAssignHandlerFixedCell(t *testing.T) {
	b := mustBoard(t, classicValues)
	initial := mustBoard(t, classicValues)
	r := httptest.NewRequest("POST", "/api/assign", strings.NewReader(`{"row":0,"col":0,"num":1}`))
	w := httptest.NewRecorder()
	state, e := b.AssignHandler(&initial, w, r)
	if e == nil || state != nil {
		t.Fatalf("TestAssignHandlerFixedCell: no error assigning a fixed cell")
	}
	if w.Code != 400 {
		t.Errorf("TestAssignHandlerFixedCell: status %d, expected 400", w.Code)
	}
	err, ok := e.(Error)
	if !ok || err.Condition != FixedCellCondition {
		t.Errorf("TestAssignHandlerFixedCell: unexpected error %v", e)
	}
	if b[0][0] != 5 {
		t.Errorf("TestAssignHandlerFixedCell: fixed cell modified to %d", b[0][0])
	}
	var back Error
	if e := json.NewDecoder(w.Body).Decode(&back); e != nil {
		t.Fatalf("TestAssignHandlerFixedCell: can't decode error response: %v", e)
	}
	if back.Condition != FixedCellCondition {
		t.Errorf("TestAssignHandlerFixedCell: response error %+v", back)
	}
}

func TestAssignHandlerBadArguments(t *testing.T) {
	b := mustBoard(t, classicValues)
	initial := mustBoard(t, classicValues)
	for i, body := range []string{
		`{"row":9,"col":0,"num":1}`,
		`{"row":0,"col":-1,"num":1}`,
		`{"row":0,"col":2,"num":10}`,
		`{`,
	} {
		r := httptest.NewRequest("POST", "/api/assign", strings.NewReader(body))
		w := httptest.NewRecorder()
		if _, e := b.AssignHandler(&initial, w, r); e == nil {
			t.Errorf("TestAssignHandlerBadArguments case %d: no error for %s", i+1, body)
		}
		if w.Code != 400 {
			t.Errorf("TestAssignHandlerBadArguments case %d: status %d, expected 400", i+1, w.Code)
		}
	}
}
