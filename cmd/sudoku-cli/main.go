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

// Command-line client for the sudoku puzzle engine.  The session
// is kept in memory, so this works without any backing services;
// it's mostly useful for trying the engine out and for generating
// puzzles at the terminal.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Albahdezs/sudoku/puzzle"
)

func main() {
	err := listener(os.Stdout, os.Stdin)
	if err != nil {
		log.Fatalf("CLI failure: %v", err)
	}
}

/*

CLI listener

*/

type request struct {
	inline  string
	command string
	args    []string
}

// listener reads lines and dispatches them to handlers
func listener(out io.Writer, in io.Reader) error {
	// if we are on a terminal, we do prompting
	prompt := false
	if f, ok := out.(*os.File); ok {
		if stat, _ := f.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
			prompt = true
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprintf(out, "sudoku> ")
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				if prompt {
					fmt.Fprintf(out, " (read error)\n")
				}
				return err
			}
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return nil
		}
		r := &request{inline: strings.Trim(scanner.Text(), " \t\r\n")}
		args := strings.Split(r.inline, " ")
		r.command = strings.ToLower(args[0])
		switch r.command {
		case "":
			continue
		case "quit":
			fallthrough
		case "exit":
			return nil
		}
		for _, arg := range args[1:] {
			if len(arg) > 0 {
				r.args = append(r.args, strings.ToLower(arg))
			}
		}
		dispatchCommand(out, r)
	}
}

// command dispatching
type commandInfo struct {
	command     string
	argInfo     string
	description string
	handler     func(*cliSession, io.Writer, *request)
}

// the command dispatch info is sorted for easy usage printing,
// and then hashed for rapid dispatching
var (
	dispatchInfo  []commandInfo
	dispatchTable map[string]*commandInfo
)

func init() {
	dispatchInfo = []commandInfo{
		{"assign", "cell value", "assign a value (1-9) to a cell (like a0 or e4)", assignHandler},
		{"back", "", "go back one solution step", backHandler},
		{"conflicts", "", "list the conflicted cells", conflictsHandler},
		{"erase", "cell", "erase a cell you assigned", eraseHandler},
		{"generate", "[difficulty]", "start a fresh easy, medium, or hard puzzle", generateHandler},
		{"hint", "", "fill one cell from a solution", hintHandler},
		{"solve", "", "solve the puzzle from here", solveHandler},
		{"state", "", "show the current board", stateHandler},
		{"summary", "", "show the puzzle summary", summaryHandler},
	}
	dispatchTable = make(map[string]*commandInfo, len(dispatchInfo))
	for i := range dispatchInfo {
		dispatchTable[dispatchInfo[i].command] = &dispatchInfo[i]
	}
}

func dispatchCommand(w io.Writer, r *request) {
	defer func() {
		if err := recover(); err != nil {
			errorHandler(err, w, r)
		}
	}()

	session := sessionSelect()
	ci := dispatchTable[r.command]
	if ci == nil {
		usageHandler(fmt.Sprintf("%q is not a known command", r.command), w, r)
	} else {
		ci.handler(session, w, r)
	}
}

/*

request handlers

*/

func generateHandler(session *cliSession, w io.Writer, r *request) {
	difficulty := puzzle.Medium
	if len(r.args) > 0 {
		difficulty = puzzle.Difficulty(r.args[0])
	}
	session.start(difficulty)
	fmt.Fprintf(w, "Generated a fresh %s puzzle (%d cells to fill):\n",
		session.difficulty, len(session.initial.Empties()))
	stateHandler(session, w, r)
}

func assignHandler(session *cliSession, w io.Writer, r *request) {
	if len(r.args) != 2 {
		usageHandler(fmt.Sprintf("%s requires two arguments", r.command), w, r)
		return
	}
	row, col, ok := parseCell(r.args[0])
	if !ok {
		usageHandler(fmt.Sprintf("%s cell (%s) must be a row letter and column number, like e4",
			r.command, r.args[0]), w, r)
		return
	}
	val, err := strconv.Atoi(r.args[1])
	if err != nil {
		usageHandler(fmt.Sprintf("%s value (%s) must be a number", r.command, r.args[1]), w, r)
		return
	}

	next := session.current()
	if e := next.Assign(&session.initial, row, col, val); e != nil {
		fmt.Fprintf(w, "Assign failed: %v\n", e)
		return
	}
	session.addStep(next)
	if cs := next.Conflicts(); len(cs) > 0 {
		fmt.Fprintf(w, "Assign succeeded but the board now has conflicts:\n")
	} else if next.Complete() {
		fmt.Fprintf(w, "Assign succeeded; the puzzle is complete!\n")
	} else {
		fmt.Fprintf(w, "Assign succeeded:\n")
	}
	stateHandler(session, w, r)
}

func eraseHandler(session *cliSession, w io.Writer, r *request) {
	if len(r.args) != 1 {
		usageHandler(fmt.Sprintf("%s requires a cell argument", r.command), w, r)
		return
	}
	row, col, ok := parseCell(r.args[0])
	if !ok {
		usageHandler(fmt.Sprintf("%s cell (%s) must be a row letter and column number, like e4",
			r.command, r.args[0]), w, r)
		return
	}
	next := session.current()
	if e := next.Assign(&session.initial, row, col, 0); e != nil {
		fmt.Fprintf(w, "Erase failed: %v\n", e)
		return
	}
	session.addStep(next)
	stateHandler(session, w, r)
}

func backHandler(session *cliSession, w io.Writer, r *request) {
	session.removeStep(w)
	stateHandler(session, w, r)
}

func hintHandler(session *cliSession, w io.Writer, r *request) {
	board := session.current()
	hint, ok := board.Hint(rngSource)
	if !ok {
		if _, _, empty := board.FindEmpty(); !empty {
			fmt.Fprintf(w, "The board is full; nothing to hint.\n")
		} else {
			fmt.Fprintf(w, "No hint: this board has no solution.  Try going back.\n")
		}
		return
	}
	board[hint.Row][hint.Col] = hint.Num
	session.addStep(board)
	fmt.Fprintf(w, "Hint: %c%d gets %d.\n", 'a'+hint.Row, hint.Col, hint.Num)
	stateHandler(session, w, r)
}

func solveHandler(session *cliSession, w io.Writer, r *request) {
	board := session.current()
	if !board.Solve() {
		fmt.Fprintf(w, "This board has no solution.  Try going back.\n")
		return
	}
	session.addStep(board)
	fmt.Fprintf(w, "Solved:\n")
	stateHandler(session, w, r)
}

func conflictsHandler(session *cliSession, w io.Writer, r *request) {
	board := session.current()
	cs := board.Conflicts()
	if len(cs) == 0 {
		fmt.Fprintf(w, "No conflicts.\n")
		return
	}
	fmt.Fprintf(w, "Conflicted cells: %s\n", puzzle.ConflictsString(cs))
}

func stateHandler(session *cliSession, w io.Writer, r *request) {
	board := session.current()
	fmt.Fprintf(w, "%v", &board)
}

func summaryHandler(session *cliSession, w io.Writer, r *request) {
	board := session.current()
	fmt.Fprintf(w, "A %s puzzle on solution step %d; ", session.difficulty, len(session.steps))
	fmt.Fprintf(w, "assigned cells: %d; empty cells: %d\n",
		board.CountFilled(), len(board.Empties()))
}

func usageHandler(msg string, w io.Writer, r *request) {
	fmt.Fprintf(w, "Error: %s\nUsage:\n", msg)
	for _, ci := range dispatchInfo {
		fmt.Fprintf(w, "    %9s %-12s\t%s\n", ci.command, ci.argInfo, ci.description)
	}
	fmt.Fprintf(w, "  and 'quit' or EOF to exit.\n")
}

func errorHandler(err interface{}, w io.Writer, r *request) {
	fmt.Fprintf(w, "Panic executing %q: %v\n", r.inline, err)
	log.Printf("Error executing %q: %v\n", r.inline, err)
}

// parseCell reads a cell name as printed in the board dump: a
// row letter a-i followed by a column number 0-8.
func parseCell(arg string) (row, col int, ok bool) {
	if len(arg) < 2 {
		return 0, 0, false
	}
	row = int(arg[0] - 'a')
	if row < 0 || row >= puzzle.Side {
		return 0, 0, false
	}
	col, err := strconv.Atoi(arg[1:])
	if err != nil || col < 0 || col >= puzzle.Side {
		return 0, 0, false
	}
	return row, col, true
}

/*

session handling

The CLI keeps one session in memory for the life of the process:
the initial board, plus every board the user has stepped through
so back can restore them.

*/

type cliSession struct {
	difficulty puzzle.Difficulty
	initial    puzzle.Board
	steps      []puzzle.Board
}

var (
	theSession *cliSession
	rngSource  = puzzle.NewSource()
)

// sessionSelect: find or create the in-memory session.
func sessionSelect() *cliSession {
	if theSession == nil {
		theSession = &cliSession{}
		theSession.start(puzzle.Medium)
	}
	return theSession
}

// start: generate a fresh puzzle and make it the only step.
func (session *cliSession) start(difficulty puzzle.Difficulty) {
	board := puzzle.Generate(rngSource, difficulty)
	session.difficulty = difficulty
	session.initial = board
	session.steps = []puzzle.Board{board}
}

// current: a copy of the latest step's board, safe to mutate.
func (session *cliSession) current() puzzle.Board {
	return session.steps[len(session.steps)-1]
}

// addStep: push a board as the new current step.
func (session *cliSession) addStep(board puzzle.Board) {
	session.steps = append(session.steps, board)
}

// removeStep: drop the current step, if there's one to drop.
func (session *cliSession) removeStep(w io.Writer) {
	if len(session.steps) > 1 {
		session.steps = session.steps[:len(session.steps)-1]
	} else {
		fmt.Fprintf(w, "Nothing to undo.\n")
	}
}
