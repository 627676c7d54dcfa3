package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/manav03panchal/encore/internal/errors"
)

// stdin is where prompts read from. Tests replace it and reset stdinLines.
var (
	stdin      io.Reader = os.Stdin
	stdinLines *bufio.Reader
)

// stdinIsTerminal reports whether prompts can be shown interactively.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readSecret prompts for a value without echoing it. When stdin is not a
// terminal the first line of stdin is used.
func readSecret(label string) (string, error) {
	if !stdinIsTerminal() {
		return readLine()
	}

	fmt.Fprintf(os.Stderr, "%s: ", label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.Wrap(err, "failed to read "+strings.ToLower(label))
	}
	return string(b), nil
}

// readValue prompts for a visible value.
func readValue(label string) (string, error) {
	if stdinIsTerminal() {
		fmt.Fprintf(os.Stderr, "%s: ", label)
	}
	return readLine()
}

func readLine() (string, error) {
	if stdinLines == nil {
		stdinLines = bufio.NewReader(stdin)
	}
	line, err := stdinLines.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "failed to read input")
	}
	if err == io.EOF && line == "" {
		return "", errors.NewUserError("No input given", "Pass the value as an argument or on standard input.")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
