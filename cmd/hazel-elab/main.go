package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/hazel-lang/hazel/internal/astdump"
	"github.com/hazel-lang/hazel/internal/config"
	"github.com/hazel-lang/hazel/internal/diagnostics"
	"github.com/hazel-lang/hazel/internal/elab"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiBold  = "\033[1m"
)

// useColor reports whether diagnostics should be rendered with ANSI colors.
func useColor() bool {
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <dump.nast.yaml> [more dumps...]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Runs the elaboration validation passes over serialized front-end trees.\n")
}

func isDumpFile(path string) bool {
	for _, ext := range config.DumpFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func renderDiagnostic(e *diagnostics.DiagnosticError, sourceRoot string, color bool) string {
	file := e.File
	if sourceRoot != "" {
		if rel, err := filepath.Rel(sourceRoot, file); err == nil {
			file = rel
		}
	}
	var sb strings.Builder
	if file != "" {
		sb.WriteString(file)
		sb.WriteString(": ")
	}
	if color {
		sb.WriteString(ansiBold + ansiRed)
		sb.WriteString(e.Error())
		sb.WriteString(ansiReset)
	} else {
		sb.WriteString(e.Error())
	}
	for _, rel := range e.Related {
		sb.WriteString(fmt.Sprintf("\n    note: %s (line %d:%d)", rel.Message, rel.Token.Line, rel.Token.Column))
	}
	return sb.String()
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	cfg := &elab.Config{}
	if root, err := os.Getwd(); err == nil {
		cfg.SourceRoot = root
	}
	color := useColor()

	hasErrors := false
	for _, path := range args {
		if !isDumpFile(path) {
			fmt.Fprintf(os.Stderr, "warning: %s does not look like a tree dump (expected %s)\n", path, config.DumpFileExt)
		}
		prog, err := astdump.DecodeFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(2)
		}

		// A fresh scope pass per file: its scope table and flags are scoped
		// to a single traversal.
		errs := elab.Run(prog, cfg, elab.NewTparamScopePass(), elab.NewInterfacePass())
		for _, e := range errs {
			fmt.Printf("- %s\n", renderDiagnostic(e, cfg.SourceRoot, color))
		}
		if len(errs) > 0 {
			hasErrors = true
		}
	}

	if hasErrors {
		os.Exit(1)
	}
}
