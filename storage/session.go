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

package storage

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Albahdezs/sudoku/puzzle"
	"github.com/gomodule/redigo/redis"
)

// A Session tracks one user's progress on their current puzzle.
// Behind the scenes, every board the user has passed through in
// this solution is kept as a step in the cache, so the user can
// go back (undo) prior entries.
type Session struct {
	// these elements are persisted in the session hash
	SID        string // session ID
	PID        string // ID of puzzle being played
	Difficulty string // difficulty the puzzle was generated at
	Step       int    // current step
	Created    string // RFC3339 time when the session was created
	Saved      string // RFC3339 time when the session was last saved

	// these elements are persisted in the steps, serialized as JSON
	Board   *puzzle.Board `redis:"-"` // board at the current step
	Initial *puzzle.Board `redis:"-"` // the puzzle's given cells
}

/*

session manipulation

*/

// StartPuzzle: generate a fresh puzzle at the given difficulty,
// persist it, and point the session at it, clearing any solver
// steps from the previous puzzle.  Unknown difficulty tags
// generate at medium, per the generation policy.
func (session *Session) StartPuzzle(difficulty puzzle.Difficulty) {
	pe := newPuzzleEntry(difficulty)
	pe.cacheInsert()
	pe.databaseInsert()

	board := pe.makeBoard()
	initial := board
	session.PID = pe.PuzzleId
	session.Difficulty = string(pe.Difficulty)
	session.Board = &board
	session.Initial = &initial

	// update the cache
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step = 1
	bytes := session.marshalStep()
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		tx.Send("DEL", session.stepsKey())
		_, err = tx.Do("RPUSH", session.stepsKey(), bytes)
		if err != nil {
			log.Printf("Redis error on save of session %q after reset: %v", session.SID, err)
		}
		return
	}
	rdExecute(body)
	log.Printf("Reset session %v to start solving puzzle %q (%s).",
		session.SID, session.PID, session.Difficulty)
}

// Assign: write one cell of the session's board and record the
// result as a new step.  Fixed cells and out-of-range arguments
// give the assignment error back without touching the steps.
func (session *Session) Assign(row, col, val int) error {
	if err := session.Board.Assign(session.Initial, row, col, val); err != nil {
		return err
	}
	session.AddStep()
	return nil
}

// AddStep: record the session's current board as a new step.
// Assign calls this itself; servers that mutate the board some
// other way (solving it, applying a hint) call it directly.
func (session *Session) AddStep() {
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step++
	bytes := session.marshalStep()
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		_, err = tx.Do("RPUSH", session.stepsKey(), bytes)
		if err != nil {
			log.Printf("Redis error on save of %s:%q step %d: %v",
				session.SID, session.PID, session.Step, err)
		}
		return
	}
	rdExecute(body)
	log.Printf("Added session %v:%v step %d.", session.SID, session.PID, session.Step)
}

// RemoveStep: remove the last step and restore the prior step's
// board.
func (session *Session) RemoveStep() {
	if session.Step <= 1 {
		// nothing to undo
		return
	}

	// trim the last step and reload the one before it
	var bytes []byte
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step--
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		tx.Send("LTRIM", session.stepsKey(), 0, -2)
		bytes, err = redis.Bytes(tx.Do("LINDEX", session.stepsKey(), -1))
		if err != nil {
			log.Printf("Error on remove to %s:%q step %d: %v",
				session.SID, session.PID, session.Step, err)
		}
		return
	}
	rdExecute(body)
	session.unmarshalStep(bytes)
	log.Printf("Reverted session %v:%v to step %d.", session.SID, session.PID, session.Step)
}

// RemoveAllSteps: throw away the user's entries and put the
// session back at the puzzle's starting board.
func (session *Session) RemoveAllSteps() {
	if session.Step <= 1 {
		return
	}
	board := *session.Initial
	session.Board = &board
	session.Saved = time.Now().Format(time.RFC3339)
	session.Step = 1
	bytes := session.marshalStep()
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		tx.Send("DEL", session.stepsKey())
		_, err = tx.Do("RPUSH", session.stepsKey(), bytes)
		if err != nil {
			log.Printf("Redis error on restart of %s:%q: %v", session.SID, session.PID, err)
		}
		return
	}
	rdExecute(body)
	log.Printf("Restarted session %v:%v from its initial board.", session.SID, session.PID)
}

// Lookup: find the saved session for the receiver's SID.  When
// found, the session's puzzle and current board are loaded too.
func (session *Session) Lookup() (found bool) {
	body := func(tx redis.Conn) error {
		vals, err := redis.Values(tx.Do("HGETALL", session.key()))
		if len(vals) > 0 {
			if err := redis.ScanStruct(vals, session); err != nil {
				log.Printf("Redis error on parse of saved session %q: %v", session.SID, err)
				return err
			}
			found = true
			return nil
		}
		if err != nil {
			log.Printf("Redis error on lookup of session %q: %v", session.SID, err)
			return err
		}
		log.Printf("No saved session %q", session.SID)
		return nil
	}
	rdExecute(body)
	if found {
		initial := loadPuzzleEntry(session.PID).makeBoard()
		session.Initial = &initial
		session.LoadStep()
	}
	return
}

// LoadStep: load the current step's board from the cache.
func (session *Session) LoadStep() {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("LINDEX", session.stepsKey(), -1))
		if err != nil {
			log.Printf("Error on load of %s:%q step %d: %v",
				session.SID, session.PID, session.Step, err)
		}
		return
	}
	rdExecute(body)
	session.unmarshalStep(bytes)
}

/*

serialization of board state into and out of the cache

*/

// marshalStep - get JSON for the current step's board
func (session *Session) marshalStep() []byte {
	bytes, err := json.Marshal(session.Board.Values())
	if err != nil {
		log.Printf("Failed to marshal board of %s:%q step %d as JSON: %v",
			session.SID, session.PID, session.Step, err)
		panic(err)
	}
	return bytes
}

// unmarshalStep - restore the board for a saved step
func (session *Session) unmarshalStep(bytes []byte) {
	var values []int
	if err := json.Unmarshal(bytes, &values); err != nil {
		log.Printf("Failed to unmarshal saved JSON of %s:%q step %d: %v",
			session.SID, session.PID, session.Step, err)
		panic(err)
	}
	board, err := puzzle.New(values)
	if err != nil {
		log.Printf("Failed to rebuild board for %s:%q step %d: %v",
			session.SID, session.PID, session.Step, err)
		panic(err)
	}
	session.Board = &board
}

/*

session key generation

*/

// key - returns the session key
func (session *Session) key() string {
	return "SID:" + session.SID
}

// stepsKey - returns the key for the session's step array
func (session *Session) stepsKey() string {
	return session.key() + ":PID:" + session.PID + ":Steps"
}
