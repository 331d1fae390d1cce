package config

import (
	"fmt"
	"io"
	"os"
)

var stderr io.Writer = os.Stderr

var exit = os.Exit

// Exitf writes a formatted error message to stderr and exits with code 1.
// Entry points use it when configuration is unusable, so a misconfigured
// deployment stops before it serves empty pages.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exit(1)
}
