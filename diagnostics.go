package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const diagnosticPrefix = "clang-for-clapack:"

// Prints a single prefixed line to stderr. The prefix is only colored when
// stderr is a terminal, so build logs stay plain.
func printDiagnostic(env env, format string, v ...interface{}) {
	prefix := diagnosticPrefix
	if useColor(env) {
		prefixColor := color.New(color.FgRed, color.Bold)
		prefixColor.EnableColor()
		prefix = prefixColor.Sprint(prefix)
	}
	fmt.Fprintf(env.stderr(), "%s %s\n", prefix, fmt.Sprintf(format, v...))
}

func useColor(env env) bool {
	if env.getenv("NO_COLOR") != "" || env.getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal(env.stderr())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
