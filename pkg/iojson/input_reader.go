package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// InputReader reads a command's text input from the --file flag, falling back
// to piped stdin.
type InputReader struct {
	fileFlagValue string
	stdin         io.Reader
	isTerminal    func() bool
}

// Flag returns the --file flag bound to the reader.
func (r *InputReader) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to input file (reads from stdin if not provided)",
		Destination: &r.fileFlagValue,
	}
}

// Path returns the --file value, empty when reading stdin.
func (r *InputReader) Path() string { return r.fileFlagValue }

// ReadString returns the whole input.
func (r *InputReader) ReadString() (string, error) {
	if r.fileFlagValue != "" {
		data, err := os.ReadFile(r.fileFlagValue)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil
	}

	stdin, isTerminal := r.stdin, r.isTerminal
	if stdin == nil {
		stdin = os.Stdin
	}
	if isTerminal == nil {
		isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	}

	if isTerminal() {
		return "", fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe input")
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
