/*
File    : go-fresh/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Fresh
interpreter. The REPL provides an interactive environment where users
can:
- Enter Fresh code line by line against a persistent global scope
- See the value of each top-level expression immediately
- Navigate command history using arrow keys
- Complete keywords and builtin names with Tab (fuzzy matched)

The REPL uses the readline library for line editing and history and
prints through the color package for visual feedback.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/go-fresh/lexer"
	"github.com/akashmaji946/go-fresh/objects"
	"github.com/akashmaji946/go-fresh/run"
	"github.com/akashmaji946/go-fresh/std"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/sahilm/fuzzy"
)

// Color definitions for REPL output:
// - yellowColor: expression results
// - redColor: error renderings
// - greenColor: the banner
// - cyanColor: informational messages and instructions
var (
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents one interactive session's configuration.
type Repl struct {
	Prompt      string // Command prompt shown to the user
	HistoryFile string // Where readline persists history ("" disables)
	Debug       bool   // Dump the token vector of every line
}

// NewRepl creates a REPL with the given prompt and history location.
func NewRepl(prompt, historyFile string, debug bool) *Repl {
	return &Repl{Prompt: prompt, HistoryFile: historyFile, Debug: debug}
}

// printBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) printBannerInfo(writer io.Writer) {
	greenColor.Fprintln(writer, "Fresh interactive shell")
	cyanColor.Fprintln(writer, "Type your code and press enter")
	cyanColor.Fprintln(writer, "Type '.exit' or press Ctrl-D to quit")
	cyanColor.Fprintln(writer, "Use up/down arrows to navigate command history")
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline with history and completion
// 3. Reads, runs and prints lines until .exit, EOF or Ctrl-C
//
// Every line runs against the shared global scope, so definitions
// survive between lines. Each top-level line evaluates to a List of
// its statement values; a single-element list is unwrapped before
// printing.
func (r *Repl) Start(writer io.Writer) error {
	r.printBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Prompt,
		HistoryFile:     r.HistoryFile,
		AutoComplete:    newCompleter(),
		InterruptPrompt: "^C",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl-C ends the session normally
			return nil
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return nil
		}

		result, runErr := run.Run("<shell>", line, r.Debug)
		if runErr != nil {
			redColor.Fprintln(writer, runErr.AsString())
			continue
		}
		if result == nil {
			continue
		}

		// The top level is a statement sequence; unwrap a lone value
		if list, ok := result.(*objects.List); ok && list.Len() == 1 {
			yellowColor.Fprintln(writer, list.Items()[0].ToString())
		} else {
			yellowColor.Fprintln(writer, result.ToString())
		}
	}
}

// completer fuzzy-completes the word under the cursor against the
// language keywords and the registered builtin names.
type completer struct {
	candidates []string
}

// newCompleter collects the completion candidates.
func newCompleter() *completer {
	candidates := make([]string, 0, len(lexer.KEYWORDS_MAP))
	for keyword := range lexer.KEYWORDS_MAP {
		candidates = append(candidates, keyword)
	}
	candidates = append(candidates, std.Names()...)
	candidates = append(candidates, "null", "true", "false")
	return &completer{candidates: candidates}
}

// Do implements readline.AutoCompleter. Matches are ranked by fuzzy
// score but only prefix matches can be textually completed in place,
// so others are filtered out.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && isWordRune(line[start-1]) {
		start--
	}
	word := string(line[start:pos])
	if word == "" {
		return nil, 0
	}

	var suggestions [][]rune
	for _, match := range fuzzy.Find(word, c.candidates) {
		if strings.HasPrefix(match.Str, word) {
			suggestions = append(suggestions, []rune(match.Str[len(word):]))
		}
	}
	return suggestions, len(word)
}

// isWordRune reports whether r can be part of an identifier.
func isWordRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
