package main

// This is the front end of a small dependently-typed lambda calculus. It reads
// an expression and prints it back in canonical form.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/letung3105/lambda/glambda/internal/lambda"
	"github.com/peterh/liner"
)

const (
	historyFile = ".glambda_history"
	promptMain  = "λ> "
)

type options struct {
	indices bool
	tree    bool
	free    bool
}

func main() {
	var opts options
	flag.BoolVar(&opts.indices, "indices", false, "print bound variables as De Bruijn indices")
	flag.BoolVar(&opts.tree, "tree", false, "also print the syntax tree as an s-expression")
	flag.BoolVar(&opts.free, "free", false, "also print the free variables")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: glambda [flags] [script]")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) > 1 {
		flag.Usage()
		os.Exit(64)
	}

	reporter := lambda.NewSimpleReporter(os.Stderr)
	core := &lambda.Core{ShowIndices: opts.indices, Reporter: reporter}
	if len(args) != 1 {
		runPrompt(core, opts)
	} else {
		runFile(args[0], core, opts)
	}
}

func run(script string, out io.Writer, core *lambda.Core, opts options) {
	expr, err := core.Decode(script)
	if err != nil {
		return
	}
	fmt.Fprintln(out, core.Encode(expr))
	if opts.tree {
		printer := &lambda.SexpPrinter{}
		fmt.Fprintln(out, printer.Print(expr))
	}
	if opts.free {
		free := lambda.FreeVars(expr)
		names := make([]string, len(free))
		for i, sym := range free {
			names[i] = sym.String()
		}
		fmt.Fprintf(out, "free: %s\n", strings.Join(names, " "))
	}
}

// Run the front end in REPL mode
func runPrompt(core *lambda.Core, opts options) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			// io.EOF on Ctrl+D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			break
		}
		ln.AppendHistory(line)
		run(line, os.Stdout, core, opts)
		core.Reporter.Reset()
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
}

// Run the given file as script
func runFile(fpath string, core *lambda.Core, opts options) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 1)

	run(string(bytes), os.Stdout, core, opts)
	exitIf(core.Reporter.HadSystemError(), 70)
	exitIf(core.Reporter.HadError(), 65)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
