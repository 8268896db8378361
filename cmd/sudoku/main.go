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

// The sudoku web server: puzzle play in the browser, with
// sessions and puzzles persisted through the storage package.
package main

import (
	"log"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Albahdezs/sudoku/client"
	"github.com/Albahdezs/sudoku/puzzle"
	"github.com/Albahdezs/sudoku/storage"
)

const cookieName = "sudokuID"
const cookiePath = "/"

var (
	startTime    = time.Now() // instance start-up time
	sessions     = make(map[string]*storage.Session)
	sessionMutex sync.RWMutex
	difficulties = []puzzle.Difficulty{puzzle.Easy, puzzle.Medium, puzzle.Hard}
)

// getCookie gets the session cookie, or sets a new one.  It
// returns the session ID associated with the cookie.
//
// Browsers that reach the same instance over both HTTP and HTTPS
// (as happens behind PaaS routers that forward both to one dyno)
// think they have two different sessions, so the forwarded
// protocol is folded into the session ID to keep them apart.
func getCookie(w http.ResponseWriter, r *http.Request) string {
	proto := "httpx" // absent other indicators, protocol is unknown
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		proto = forwarded
	}

	// check for an existing cookie whose value matches the protocol
	if sc, e := r.Cookie(cookieName); e == nil {
		if m, e := regexp.MatchString(proto+"-[0-9a-z]{3,}", sc.Value); e == nil && m {
			return sc.Value
		}
	}

	// no session cookie or not a valid session cookie,
	// start a new session with a new cookie
	sid := proto + "-" + strconv.FormatInt(int64(time.Now().Sub(startTime)), 36)
	sc := &http.Cookie{Name: cookieName, Value: sid, Path: cookiePath}
	http.SetCookie(w, sc)
	return sid
}

// sessionSelect finds or creates the session for the current
// request.  Since this can happen concurrently from simultaneous
// goroutines, the in-memory session map is interlocked; the
// session of record lives in storage, so an instance restart
// just repopulates the map from there.
func sessionSelect(w http.ResponseWriter, r *http.Request) *storage.Session {
	sessionID := getCookie(w, r)
	sessionMutex.RLock()
	session, ok := sessions[sessionID]
	sessionMutex.RUnlock()
	if ok && session != nil {
		return session
	}
	session = &storage.Session{SID: sessionID, Created: time.Now().Format(time.RFC3339)}
	if session.Lookup() {
		log.Printf("Found session %v, puzzle %q, on step %d.",
			session.SID, session.PID, session.Step)
	} else {
		session.StartPuzzle(puzzle.Medium)
	}
	sessionMutex.Lock()
	sessions[sessionID] = session
	sessionMutex.Unlock()
	return session
}

// apiHandler routes the JSON API.  The puzzle package handlers
// write the response; the session records every board change as
// an undoable step.
func apiHandler(session *storage.Session, w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasPrefix(r.URL.Path, "/api/state"):
		session.Board.StateHandler(session.Initial, w, r)
	case strings.HasPrefix(r.URL.Path, "/api/conflicts"):
		session.Board.ConflictsHandler(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/hint"):
		session.Board.HintHandler(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/solve"):
		next := *session.Board
		solved, e := next.SolveHandler(session.Initial, w, r)
		if e == nil && solved {
			*session.Board = next
			session.AddStep()
			log.Printf("Solved session %v:%v.", session.SID, session.PID)
		}
	case strings.HasPrefix(r.URL.Path, "/api/back"):
		session.RemoveStep()
		session.Board.StateHandler(session.Initial, w, r)
	case strings.HasPrefix(r.URL.Path, "/api/assign"):
		if r.Method != "POST" {
			http.Error(w, "assign requires POST", http.StatusMethodNotAllowed)
			return
		}
		next := *session.Board
		_, e := next.AssignHandler(session.Initial, w, r)
		if e != nil {
			log.Printf("Assign failed, returned error, no session change.")
		} else {
			*session.Board = next
			session.AddStep()
		}
	default:
		http.NotFound(w, r)
	}
}

// solverHandler serves the solver page for the session's current
// board.
func solverHandler(session *storage.Session, w http.ResponseWriter, r *http.Request) {
	state := puzzle.NewState(session.Board, session.Initial)
	body := client.SolverPage(session.SID, session.PID, &state)
	sendHTML(body, w)
}

// homeHandler serves the home page with its difficulty choices.
func homeHandler(session *storage.Session, w http.ResponseWriter, r *http.Request) {
	body := client.HomePage(session.SID, session.PID, difficulties)
	sendHTML(body, w)
}

func sendHTML(body string, w http.ResponseWriter) {
	hs := w.Header()
	hs.Add("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

// serveHTTP is the whole routing table.  Storage operations
// panic on infrastructure failures; the recovery here turns that
// into an error page rather than a dropped connection.
func serveHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if err := recover(); err != nil {
			log.Printf("Handler panic on %s %s: %v", r.Method, r.URL.Path, err)
			w.Header().Add("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			if e, ok := err.(error); ok {
				w.Write([]byte(client.ErrorPage(e)))
			}
		}
	}()

	if client.StaticHandler(w, r) {
		return
	}
	log.Printf("Handling %s %s...", r.Method, r.URL.Path)
	session := sessionSelect(w, r)
	switch {
	case strings.HasPrefix(r.URL.Path, "/reset/"):
		tag := r.URL.Path[len("/reset/"):]
		session.StartPuzzle(puzzle.Difficulty(tag))
	case strings.HasPrefix(r.URL.Path, "/api/"):
		apiHandler(session, w, r)
		return
	case strings.HasPrefix(r.URL.Path, "/solver/"):
		solverHandler(session, w, r)
		return
	case strings.HasPrefix(r.URL.Path, "/home/"):
		homeHandler(session, w, r)
		return
	}
	http.Redirect(w, r, "/solver/", http.StatusFound)
}

func main() {
	// make sure the client resources are where we expect
	if err := client.VerifyResources(); err != nil {
		log.Fatalf("Client resource check failed: %v", err)
	}

	// connect to storage
	cacheId, databaseId, err := storage.Connect()
	if err != nil {
		log.Fatalf("Storage initialization failed: %v", err)
	}
	defer storage.Close()
	log.Printf("Connected to cache at %q.", cacheId)
	log.Printf("Connected to database at %q.", databaseId)

	http.HandleFunc("/", serveHTTP)

	// PaaS environment port sensing
	port := os.Getenv("PORT")
	if port == "" {
		// running locally in dev mode
		port = "localhost:8080"
	} else {
		// running as a true server
		port = ":" + port
	}

	log.Printf("Listening on %s...", port)
	if err := http.ListenAndServe(port, nil); err != nil {
		log.Fatal("Listener failure: ", err)
	}
}
