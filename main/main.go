/*
Package main is the Volt interpreter's single entry point: no arguments
starts the REPL, one positional argument runs a .volt file, and --help/-h
and --version/-v are handled inline.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/voltlang/volt/eval"
	"github.com/voltlang/volt/repl"
)

const (
	version = "v0.1.0"
	author  = "volt contributors"
	license = "MIT"
	prompt  = "volt >>> "
	line    = "----------------------------------------------------------------"
)

const banner = `
 ██╗   ██╗ ██████╗ ██╗  ████████╗
 ██║   ██║██╔═══██╗██║  ╚══██╔══╝
 ██║   ██║██║   ██║██║     ██║
 ╚██╗ ██╔╝██║   ██║██║     ██║
  ╚████╔╝ ╚██████╔╝███████╗██║
   ╚═══╝   ╚═════╝ ╚══════╝╚═╝
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	r := repl.New(banner, version, author, line, license, prompt)
	if len(os.Args) > 2 && os.Args[1] == "--session" {
		r.SessionPath = os.Args[2]
		r.Start(os.Stdout)
		return
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		}
		runFile(os.Args[1])
		return
	}

	r.Start(os.Stdout)
}

func showHelp() {
	cyanColor.Println("Volt - a small interpreted scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  volt                      Start interactive REPL mode")
	yellowColor.Println("  volt <path-to-file>       Execute a Volt file (.volt)")
	yellowColor.Println("  volt --session <file>     Start REPL with bindings persisted to a YAML file")
	yellowColor.Println("  volt --help               Display this help message")
	yellowColor.Println("  volt --version             Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
	yellowColor.Println("  /scope                    List current bindings")
	yellowColor.Println("  /save                     Persist bindings to the session file")
}

func showVersion() {
	cyanColor.Printf("Volt %s (%s license, %s)\n", version, license, author)
}

func runFile(path string) {
	e := eval.New()
	e.BaseDir = "."
	parseErrs, result := e.RunFile(path)
	if parseErrs != nil {
		for _, perr := range parseErrs {
			redColor.Fprintf(os.Stderr, "⚡ [parse] %s\n", perr.Error())
		}
		os.Exit(1)
	}
	if result != nil && result.Type() == "error" {
		redColor.Fprintf(os.Stderr, "⚡ [runtime] %s\n", result.String())
		os.Exit(1)
	}
}
