package application

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrNoInput is returned when input ends before every answer was read.
var ErrNoInput = errors.New("unexpected end of input")

// InputError reports an answer that could not be parsed.
type InputError struct {
	Field string
	Token string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("expected an integer for %s, got %q", e.Field, e.Token)
}

// prompter reads whitespace-separated answers, so "3 15" may be entered on
// one line or two.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &prompter{scanner: scanner, out: out}
}

func (p *prompter) ask(prompt string) {
	_, _ = fmt.Fprint(p.out, prompt)
}

func (p *prompter) token() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrNoInput
	}
	return p.scanner.Text(), nil
}

func (p *prompter) integer(field string) (int, error) {
	tok, err := p.token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &InputError{Field: field, Token: tok}
	}
	return n, nil
}
