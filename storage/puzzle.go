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
	"fmt"
	"time"

	"github.com/Albahdezs/sudoku/puzzle"
	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

/*

puzzle entries

*/

// A puzzleEntry is the stored form of a generated puzzle: its
// id, the difficulty it was generated at, and its starting
// values.  It is JSON serializable so it can go into the cache
// as well as the database.
type puzzleEntry struct {
	PuzzleId   string
	Difficulty puzzle.Difficulty
	Values     []int32
}

// newPuzzleEntry generates a fresh puzzle at the given
// difficulty and wraps it as an entry under a new unique id.
func newPuzzleEntry(difficulty puzzle.Difficulty) *puzzleEntry {
	board := puzzle.Generate(puzzle.NewSource(), difficulty)
	values := board.Values()
	stored := make([]int32, len(values))
	for i, v := range values {
		stored[i] = int32(v)
	}
	return &puzzleEntry{
		PuzzleId:   uuid.NewString(),
		Difficulty: difficulty,
		Values:     stored,
	}
}

// loadPuzzleEntry first checks the cache, then the database, to
// find the puzzle's entry.  If it loads from the database, it
// caches the result.  Panics if there is no such stored entry.
func loadPuzzleEntry(id string) *puzzleEntry {
	pe := &puzzleEntry{PuzzleId: id}
	if pe.cacheLoad() {
		return pe
	}
	// cache miss, load from database and save to cache
	pe.databaseLoad()
	pe.cacheInsert()
	return pe
}

// makeBoard: make the board described in a puzzle entry
func (pe *puzzleEntry) makeBoard() puzzle.Board {
	values := make([]int, len(pe.Values))
	for i, v := range pe.Values {
		values[i] = int(v)
	}
	b, e := puzzle.New(values)
	if e != nil {
		panic(fmt.Errorf("Failed to create board for puzzle %q: %v", pe.PuzzleId, e))
	}
	return b
}

// key: compute the cache key for a puzzleEntry.
func (pe *puzzleEntry) key() string {
	return "PID:" + pe.PuzzleId
}

// cacheLoad: load an already cached puzzle entry.  Returns
// whether the entry was found in the cache.
func (pe *puzzleEntry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", pe.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading puzzleEntry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var spe *puzzleEntry
	err := json.Unmarshal(bytes, &spe)
	if err != nil {
		panic(fmt.Errorf("Failed to unmarshal puzzleEntry %q: %v", pe.PuzzleId, err))
	}
	if spe.PuzzleId != pe.PuzzleId {
		panic(fmt.Errorf("Cached puzzleEntry (id: %q) found for puzzle %q!",
			spe.PuzzleId, pe.PuzzleId))
	}
	*pe = *spe
	return true
}

// databaseLoad: load a puzzle entry from the database.  Panics
// if there is no saved entry with the given id.
func (pe *puzzleEntry) databaseLoad() {
	body := func(tx pgx.Tx) error {
		row := tx.QueryRow(pgCtx(),
			"SELECT difficulty, valueList FROM puzzles "+
				"WHERE puzzleId = $1", pe.PuzzleId)
		if err := row.Scan(&pe.Difficulty, &pe.Values); err != nil {
			return fmt.Errorf("Failure looking up puzzle %q: %v", pe.PuzzleId, err)
		}
		return nil
	}
	pgExecute(body)
}

// cacheInsert: insert a puzzle entry into the cache. Replaces
// any existing entry with the same id.
func (pe *puzzleEntry) cacheInsert() {
	bytes, e := json.Marshal(pe)
	if e != nil {
		panic(fmt.Errorf("Failed to marshal puzzleEntry %q: %v", pe.PuzzleId, e))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", pe.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving puzzle entry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	rdExecute(body)
}

// databaseInsert: insert a new puzzle entry into the database.
// Panics if there is already a saved entry with the given id.
func (pe *puzzleEntry) databaseInsert() {
	body := func(tx pgx.Tx) (err error) {
		_, err = tx.Exec(pgCtx(),
			"INSERT INTO puzzles (puzzleId, difficulty, valueList, created) "+
				"VALUES ($1, $2, $3, $4)",
			pe.PuzzleId, pe.Difficulty, pe.Values, time.Now())
		if err != nil {
			err = fmt.Errorf("Database error saving puzzle entry %q: %v", pe.PuzzleId, err)
		}
		return
	}
	pgExecute(body)
}
