/*
File    : go-fresh/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Fresh interpreter.
It provides two modes of operation:
1. REPL Mode (default): interactive Read-Eval-Print Loop
2. File Mode: execute a Fresh source file given as the one positional
   argument

The interpreter uses a lexer-parser-evaluator pipeline; errors are
rendered with their source excerpt and, for runtime errors, a
traceback.
*/
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/akashmaji946/go-fresh/config"
	"github.com/akashmaji946/go-fresh/repl"
	"github.com/akashmaji946/go-fresh/run"
	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/pkg/profile"
)

// VERSION represents the current version of the Fresh interpreter
var VERSION = "v1.0.0"

// Color definitions for file execution output
var (
	redColor = color.New(color.FgRed)
)

// CLI declares the command grammar.
var CLI struct {
	File    string           `arg:"" optional:"" help:"Fresh source file to execute. Starts the REPL when omitted."`
	Debug   bool             `help:"Dump the token vector to stdout after lexing."`
	Profile bool             `help:"Write a CPU profile for this run."`
	Config  string           `help:"Path to a fresh.yaml configuration file." type:"path"`
	Version kong.VersionFlag `help:"Print the version and exit."`
}

// main parses the command line and dispatches to file or REPL mode.
//
// Usage:
//
//	go-fresh              - Start in REPL (interactive) mode
//	go-fresh <filename>   - Execute the specified Fresh source file
//	go-fresh --debug f.fr - Execute and dump the token vector first
func main() {
	kong.Parse(&CLI,
		kong.Name("go-fresh"),
		kong.Description("The Fresh language interpreter."),
		kong.Vars{"version": VERSION},
	)

	if CLI.Profile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	run.SetMaxDepth(cfg.RecursionLimit)

	// Ctrl-C ends the process quietly in either mode
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		os.Exit(0)
	}()

	if CLI.File != "" {
		runFile(CLI.File, CLI.Debug)
		return
	}

	repler := repl.NewRepl(cfg.Prompt, cfg.HistoryFile, CLI.Debug)
	if err := repler.Start(os.Stdout); err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runFile executes one source file. A missing path exits silently with
// code 0; errors from the pipeline are rendered to stdout.
func runFile(filename string, debug bool) {
	if _, err := os.Stat(filename); err != nil {
		os.Exit(0)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		os.Exit(0)
	}

	_, runErr := run.Run(filename, string(data), debug)
	if runErr != nil {
		fmt.Println(runErr.AsString())
	}
}
