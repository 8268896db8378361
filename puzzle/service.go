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
	"encoding/json"
	"fmt"
	"net/http"
)

/*

RESTful wrappers over the board operations.  Handlers both write
the JSON response to the client and return the interesting value
to the golang caller, so servers can keep session state in step
with what the client saw.

*/

// The State of a board in play: the current grid, the initial
// (fixed-cell) grid, the live conflict set, and whether the
// puzzle is complete.
type State struct {
	Values    Board  `json:"values"`
	Initial   *Board `json:"initial,omitempty"`
	Conflicts []Cell `json:"conflicts"`
	Complete  bool   `json:"complete"`
}

// NewState assembles a State from a board and its initial
// snapshot (which may be nil for boards without one, such as
// solver output).
func NewState(b *Board, initial *Board) State {
	return State{
		Values:    *b,
		Initial:   initial,
		Conflicts: b.Conflicts(),
		Complete:  b.Complete(),
	}
}

// A GenerateRequest asks for a fresh puzzle.  Unknown difficulty
// tags are not rejected; they generate at medium per the policy
// table.
type GenerateRequest struct {
	Difficulty Difficulty `json:"difficulty"`
}

// A Generated is what comes back: the puzzle board, which is
// also its own initial state.
type Generated struct {
	Difficulty Difficulty `json:"difficulty"`
	Board      Board      `json:"board"`
}

// An AssignRequest writes one cell during play.  Num 0 erases.
type AssignRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
	Num int `json:"num"`
}

// A SolveResult reports the outcome of a solve: Solved is false
// when no completion exists, and the returned state is then the
// board exactly as it was submitted.
type SolveResult struct {
	Solved bool  `json:"solved"`
	State  State `json:"state"`
}

// A HintResult carries the suggested cell value, or a null Hint
// when the board is full or admits no completion.  A null hint
// is an expected outcome, not an error.
type HintResult struct {
	Hint *Hint `json:"hint"`
}

/*

Handlers

*/

// GenerateHandler is a POST handler that reads a JSON-encoded
// GenerateRequest from the request body and generates a fresh
// puzzle at the requested difficulty.  The puzzle's State is
// sent as a 200 response, and the Generated value is returned to
// the golang caller so it can snapshot the initial board.
//
// If we can't decode the posted request, we send a 400 response
// and return the error to the caller.
func GenerateHandler(w http.ResponseWriter, r *http.Request) (*Generated, error) {
	dec := json.NewDecoder(r.Body)
	var req GenerateRequest
	if e := dec.Decode(&req); e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	board := Generate(NewSource(), req.Difficulty)
	gen := &Generated{Difficulty: req.Difficulty, Board: board}
	initial := board
	return gen, writeJSON(NewState(&board, &initial), http.StatusOK, w, r)
}

// StateHandler responds with the board's current State.  If we
// can't encode the response to the client successfully, we give
// both the client and the golang caller an Error response.
func (b *Board) StateHandler(initial *Board, w http.ResponseWriter, r *http.Request) error {
	return writeJSON(NewState(b, initial), http.StatusOK, w, r)
}

// ConflictsHandler responds with the board's conflict set.
func (b *Board) ConflictsHandler(w http.ResponseWriter, r *http.Request) error {
	conflicts := b.Conflicts()
	if conflicts == nil {
		conflicts = []Cell{}
	}
	return writeJSON(conflicts, http.StatusOK, w, r)
}

// SolveHandler solves the receiving board in place and responds
// with a SolveResult.  An unsolvable board is not an HTTP error:
// the response carries solved=false and the unchanged board, and
// nil is returned to the golang caller either way unless the
// response couldn't be sent.
func (b *Board) SolveHandler(initial *Board, w http.ResponseWriter, r *http.Request) (bool, error) {
	solved := b.Solve()
	result := SolveResult{Solved: solved, State: NewState(b, initial)}
	return solved, writeJSON(result, http.StatusOK, w, r)
}

// HintHandler responds with a HintResult for the receiving
// board.  The board is never modified; a full or uncompletable
// board yields a null hint, which the client distinguishes from
// an error by status code.
func (b *Board) HintHandler(w http.ResponseWriter, r *http.Request) error {
	var result HintResult
	if hint, ok := b.Hint(NewSource()); ok {
		result.Hint = &hint
	}
	return writeJSON(result, http.StatusOK, w, r)
}

// AssignHandler is a POST handler that applies a posted
// AssignRequest to the receiving board, honoring the fixed cells
// of the initial board.  The poster and the caller both get the
// resulting State (or the assignment Error as a 400).
func (b *Board) AssignHandler(initial *Board, w http.ResponseWriter, r *http.Request) (*State, error) {
	dec := json.NewDecoder(r.Body)
	var req AssignRequest
	if e := dec.Decode(&req); e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	if e := b.Assign(initial, req.Row, req.Col, req.Num); e != nil {
		err, ok := e.(Error)
		if !ok {
			return nil, writeError(errorFormatError, ErrorData{"AssignHandler", e.Error()}, w, r)
		}
		return nil, writeJSON(err, http.StatusBadRequest, w, r)
	}
	state := NewState(b, initial)
	return &state, writeJSON(state, http.StatusOK, w, r)
}

/*

Utilities

*/

type handlerError int

const (
	requestDecodingError handlerError = iota
	responseEncodingError
	errorFormatError
)

// writeError sends back a server error of the given type, sort
// of like http.Error, but it sends the JSON form of an
// appropriate Error.
func writeError(et handlerError, ed ErrorData,
	w http.ResponseWriter, r *http.Request) error {
	var err Error
	var status int
	switch et {
	case requestDecodingError:
		status = http.StatusBadRequest
		err = Error{
			Scope:     RequestScope,
			Structure: AttributeStructure,
			Attribute: DecodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case responseEncodingError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: EncodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case errorFormatError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: LocationAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	default:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: LocationAttribute,
			Condition: GeneralCondition,
			Values: ErrorData{
				"writeError",
				fmt.Sprintf("Unknown handler error type (%v)", et),
			},
		}
	}
	err.Message = err.Error()
	return writeJSON(err, status, w, r)
}

// writeJSON is called by handlers to encode and send the client
// response.  It returns an appropriate error status for the
// handler to return to its caller, as follows:
//
// 1. If writeJSON encounters an encoding error sending the
// response, it will create an Error object describing the
// failure, encode that Error as a 500-series response to the
// client, and return that Error to the handler.
//
// 2. If no encoding error occurs, but the handler is sending an
// Error object as the response to the client, writeJSON will
// return that same Error to the handler.
//
// 3. If no encoding error occurs, and the handler is sending a
// non-Error object as the response to the client, writeJSON will
// return nil to the handler.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	err, isErr := obj.(Error)
	bytes, e := json.Marshal(obj)
	if e != nil {
		if isErr && err.Scope == InternalScope && err.Attribute == EncodeAttribute {
			// We just failed to encode an Encoding error.  This
			// should never happen!!  If it did, it almost
			// certainly means that the JSON encoding system is
			// dead, so pseudo-encode the error by hand by
			// returning the Error's summary as a quoted string.
			status = http.StatusInternalServerError // probably was already!
			bytes = []byte(fmt.Sprintf("%q", err.Error()))
		} else {
			// generate, send, and return an encoding error
			return writeError(responseEncodingError, ErrorData{e.Error()}, w, r)
		}
	}
	hs := w.Header()
	hs.Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if isErr {
		return err
	}
	return nil
}
