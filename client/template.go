package client

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/Albahdezs/sudoku/puzzle"
)

/*

solver pages

*/

// A templateSolverPage contains the values to fill the solver
// page template.
type templateSolverPage struct {
	SessionID, PuzzleID       string
	Title, TopHead            string
	IconFile, CssFile, JsFile string
	Puzzle                    templatePuzzle
	Complete                  bool
	ApplicationFooter         string
}

// templatePuzzle is the structure expected by the puzzle grid
// section of the solver page template.
type templatePuzzle [][]templatePuzzleCell

// A templatePuzzleCell contains the cell's position, display
// value, and CSS styling classes as expected by the puzzle grid
// section of the solver page template.
type templatePuzzleCell struct {
	Row, Col                int
	Value                   template.HTML
	Shade, HBorder, VBorder string
	Given, Conflict         bool
}

// add solver statics to the static list
func init() {
	staticResourcePaths["/solver.js"] = filepath.Join("solver", "puzzle.js")
	staticResourcePaths["/solver.css"] = filepath.Join("solver", "puzzle.css")
}

// SolverPage executes the solver page template over the passed
// session and board state, and returns the solver page content
// as a string.  If there is an error, what's returned is the
// error page content as a string.
func SolverPage(sessionID string, puzzleID string, state *puzzle.State) string {
	tsp := templateSolverPage{
		SessionID:         sessionID,
		PuzzleID:          puzzleID,
		Title:             fmt.Sprintf("%s: Solver", brandName),
		TopHead:           "Puzzle Solver",
		IconFile:          iconPath,
		CssFile:           "/solver.css",
		JsFile:            "/solver.js",
		Puzzle:            solverTemplatePuzzle(state),
		Complete:          state.Complete,
		ApplicationFooter: applicationFooter(),
	}

	tmpl, err := loadPageTemplate("solver")
	if err != nil {
		return ErrorPage(fmt.Errorf("Couldn't load the %q template: %v", "solver", err))
	}
	buf := new(bytes.Buffer)
	err = tmpl.Execute(buf, tsp)
	if err != nil {
		return ErrorPage(err)
	}
	return buf.String()
}

// solverTemplatePuzzle lays a board state out as the grid the
// solver page template expects: 9x9 cells with their box shading
// and border classes, given cells marked as fixed, and conflicted
// cells flagged for highlighting.
func solverTemplatePuzzle(state *puzzle.State) templatePuzzle {
	conflicted := make(map[puzzle.Cell]bool, len(state.Conflicts))
	for _, cell := range state.Conflicts {
		conflicted[cell] = true
	}
	rows := make(templatePuzzle, puzzle.Side)
	for i := 0; i < puzzle.Side; i++ {
		rows[i] = make([]templatePuzzleCell, puzzle.Side)
		// is this top, bottom, or middle row of its box
		hborder := "middle"
		if i%puzzle.BoxSide == 0 {
			hborder = "top"
		} else if i%puzzle.BoxSide == puzzle.BoxSide-1 {
			hborder = "bottom"
		}
		for j := 0; j < puzzle.Side; j++ {
			value := template.HTML("&nbsp;")
			if val := state.Values[i][j]; val > 0 {
				value = template.HTML(fmt.Sprint(val))
			}
			// even box or odd box shading
			shade := "lighter"
			if (i/puzzle.BoxSide+j/puzzle.BoxSide)%2 == 0 {
				shade = "darker"
			}
			// is this left, center, or right column of its box
			vborder := "center"
			if j%puzzle.BoxSide == 0 {
				vborder = "left"
			} else if j%puzzle.BoxSide == puzzle.BoxSide-1 {
				vborder = "right"
			}
			rows[i][j] = templatePuzzleCell{
				Row:      i,
				Col:      j,
				Value:    value,
				Shade:    shade,
				HBorder:  hborder,
				VBorder:  vborder,
				Given:    state.Initial != nil && state.Initial[i][j] != 0,
				Conflict: conflicted[puzzle.Cell{Row: i, Col: j}],
			}
		}
	}
	return rows
}

/*

error pages

*/

// A templateErrorPage contains the values to fill the error page
// template.
type templateErrorPage struct {
	Title, TopHead, Message string
	IconFile, ReportBugPage string
	ApplicationFooter       string
}

// ErrorPage returns the error page content for an error, so the
// server can show failures to users in a styled page.
func ErrorPage(e error) string {
	tep := templateErrorPage{
		Title:             fmt.Sprintf("%s: Error", brandName),
		TopHead:           "Error Page",
		Message:           e.Error(),
		IconFile:          iconPath,
		ReportBugPage:     reportBugPath,
		ApplicationFooter: applicationFooter(),
	}

	tmpl, err := loadPageTemplate("error")
	if err != nil {
		return fmt.Sprintf("Couldn't load the %q template: %v", "error", err)
	}

	buf := new(bytes.Buffer)
	err = tmpl.Execute(buf, tep)
	if err != nil {
		return fmt.Sprintf("A templating error has occurred: %v", err)
	}
	return buf.String()
}

/*

home page

*/

// A templateHomePage contains the values to fill the home page
// template.
type templateHomePage struct {
	SessionID, PuzzleID       string
	Title, TopHead            string
	IconFile, CssFile, JsFile string
	Difficulties              []string
	ApplicationFooter         string
}

// add home statics to the static list
func init() {
	staticResourcePaths["/home.js"] = filepath.Join("home", "home.js")
	staticResourcePaths["/home.css"] = filepath.Join("home", "home.css")
}

// HomePage executes the home page template over the passed
// session info and difficulty choices, and returns the home page
// content as a string.  If there is an error, what's returned is
// the error page content as a string.
func HomePage(sessionID string, puzzleID string, difficulties []puzzle.Difficulty) string {
	names := make([]string, len(difficulties))
	for i, d := range difficulties {
		names[i] = string(d)
	}
	thp := templateHomePage{
		SessionID:         sessionID,
		PuzzleID:          puzzleID,
		Title:             fmt.Sprintf("%s: Home", brandName),
		TopHead:           brandName,
		IconFile:          iconPath,
		CssFile:           "/home.css",
		JsFile:            "/home.js",
		Difficulties:      names,
		ApplicationFooter: applicationFooter(),
	}

	tmpl, err := loadPageTemplate("home")
	if err != nil {
		return ErrorPage(fmt.Errorf("Couldn't load the %q template: %v", "home", err))
	}
	buf := new(bytes.Buffer)
	err = tmpl.Execute(buf, thp)
	if err != nil {
		return ErrorPage(err)
	}
	return buf.String()
}

/*

application footer

*/

// applicationFooter - the application footer that shows at the
// bottom of all pages.
func applicationFooter() string {
	appName := os.Getenv(applicationNameEnvVar)
	appEnv := os.Getenv(applicationEnvEnvVar)
	appVersion := os.Getenv(applicationVersionEnvVar)
	appInstance := os.Getenv(applicationInstanceEnvVar)
	appBuild := os.Getenv(applicationBuildEnvVar)

	if appName == "" {
		appName = brandName
	}

	if appEnv == "" {
		appEnv = "local"
	}

	if appVersion != "" {
		appVersion = " " + appVersion
	}
	if len(appBuild) >= 7 {
		appBuild = appBuild[:7]
	}

	if appInstance != "" {
		appInstance = " (instance " + appInstance + ")"
	}

	switch appEnv {
	case "local":
		return "[" + appName + " local]"
	case "dev":
		return "[" + appName + " CI/CD]"
	case "stg":
		return "[" + appName + appVersion + " <" + appBuild + ">]"
	case "prd":
		return "[" + appName + appVersion + " <" + appBuild + ">" + appInstance + "]"
	}
	return "[" + appName + " <??>]"
}
