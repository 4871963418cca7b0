// Package console is the line-oriented terminal the questionnaire talks
// through: prompts go to an io.Writer, replies come from an io.Reader one
// line at a time.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console pairs a buffered line reader with an output writer. A single
// Console must be shared by everything reading the same input, otherwise
// buffered lines are lost between readers.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Console.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Printf writes formatted text to the output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Ask prints prompt without a newline and returns the next input line with
// its line terminator removed. A final unterminated line is returned
// normally; io.EOF is returned only when no input is left.
func (c *Console) Ask(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
