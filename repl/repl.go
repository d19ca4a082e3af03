/*
Package repl implements Volt's interactive Read-Eval-Print Loop: readline
based line editing and history, brace-balanced multi-line input, and
colored diagnostics for lex/parse/runtime errors.
*/
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/voltlang/volt/eval"
	"github.com/voltlang/volt/objects"
	"github.com/voltlang/volt/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session: the
// banner shown at startup, version/author/license strings, a separator
// line, and the prompt readline displays.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	// SessionPath, if non-empty, is the YAML document the global bindings
	// are loaded from when the session starts and written to by `/save`.
	SessionPath string
}

func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Welcome to Volt!")
	cyanColor.Fprintln(w, "Type your code and press enter; use 'if', 'for' etc. across lines freely.")
	cyanColor.Fprintln(w, "Type '.exit' to quit, '/scope' to list bindings.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop until EOF, an error from readline, or `.exit`.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		fmt.Fprintln(writer, err)
		return
	}
	defer rl.Close()

	e := eval.New()
	e.Writer = writer

	if r.SessionPath != "" {
		loadSession(e, r.SessionPath, writer)
	}

	var pending strings.Builder

	for {
		prompt := r.Prompt
		if pending.Len() > 0 {
			prompt = "...         "
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Good bye!")
			break
		}

		if pending.Len() == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if trimmed == ".exit" {
				fmt.Fprintln(writer, "Good bye!")
				break
			}
			if trimmed == "/scope" {
				printScope(writer, e)
				continue
			}
			if trimmed == "/save" && r.SessionPath != "" {
				saveSession(e, r.SessionPath, writer)
				continue
			}
		}

		pending.WriteString(line)
		pending.WriteByte('\n')
		rl.SaveHistory(line)

		if bracesBalanced(pending.String()) {
			source := pending.String()
			pending.Reset()
			r.evalAndPrint(writer, source, e)
		}
	}
}

// bracesBalanced reports whether every `{`/`[`/`(` in source has a match,
// the signal the REPL uses to decide whether to keep reading more lines
// before submitting a chunk to the evaluator.
func bracesBalanced(source string) bool {
	depth := 0
	for _, r := range source {
		switch r {
		case '{', '[', '(':
			depth++
		case '}', ']', ')':
			depth--
		}
	}
	return depth <= 0
}

func (r *Repl) evalAndPrint(writer io.Writer, source string, e *eval.Evaluator) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "⚡ [runtime] %v\n", rec)
		}
	}()

	p := parser.New(source)
	prog := p.Parse()
	if p.HasErrors() {
		for _, perr := range p.Errors() {
			redColor.Fprintf(writer, "⚡ [parse] %s\n", perr.Error())
		}
		return
	}

	result := e.RunProgram(prog)
	if result == nil {
		return
	}
	if result.Type() == "error" {
		redColor.Fprintf(writer, "⚡ [runtime] %s\n", result.String())
		return
	}
	if result.Type() != "null" {
		yellowColor.Fprintf(writer, "%s\n", e.Stringify(result))
	}
}

func printScope(writer io.Writer, e *eval.Evaluator) {
	for k, v := range e.Global.Snapshot() {
		cyanColor.Fprintf(writer, "%s = %s\n", k, e.Stringify(v))
	}
}

func saveSession(e *eval.Evaluator, path string, writer io.Writer) {
	bindings := e.Global.Snapshot()
	plain := make(map[string]string, len(bindings))
	for k, v := range bindings {
		plain[k] = e.Stringify(v)
	}
	out, err := yaml.Marshal(plain)
	if err != nil {
		redColor.Fprintf(writer, "⚡ could not encode session: %s\n", err.Error())
		return
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		redColor.Fprintf(writer, "⚡ could not write session: %s\n", err.Error())
		return
	}
	cyanColor.Fprintf(writer, "Session saved to %s\n", path)
}

func loadSession(e *eval.Evaluator, path string, writer io.Writer) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var plain map[string]string
	if err := yaml.Unmarshal(data, &plain); err != nil {
		redColor.Fprintf(writer, "⚡ could not parse session: %s\n", err.Error())
		return
	}
	for k, v := range plain {
		e.Global.Define(k, &objects.String{Value: v})
	}
}
