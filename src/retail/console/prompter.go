// Package console reads menu choices and field values from the terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

// ChoicePrompt is shown before every menu choice
const ChoicePrompt = "Please make your choice: "

// Prompter writes prompts to out and reads answers from in, one line each.
// End of input is reported as io.EOF.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// readNoEcho is set when in is a terminal
	readNoEcho func() ([]byte, error)
}

// New creates a Prompter. Passwords are read without echo when in is a terminal.
func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		p.readNoEcho = func() ([]byte, error) { return term.ReadPassword(fd) }
	}
	return p
}

// ReadLine prints prompt and returns the next line without its line ending
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ReadChoice prompts until an integer is entered
func (p *Prompter) ReadChoice() (int, error) {
	for {
		line, err := p.ReadLine(ChoicePrompt)
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return choice, nil
		}
		fmt.Fprintln(p.out, errors.ErrInvalidFieldValue.Message)
	}
}

// ReadInt prompts for an integer field
func (p *Prompter) ReadInt(prompt string) (int64, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, errors.ErrInvalidFieldValue.WithCause(err)
	}
	return n, nil
}

// ReadFloat prompts for a decimal number field
func (p *Prompter) ReadFloat(prompt string) (float64, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, errors.ErrInvalidFieldValue.WithCause(err)
	}
	return f, nil
}

// ReadDecimal prompts for an exact decimal amount, such as a price
func (p *Prompter) ReadDecimal(prompt string) (decimal.Decimal, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return decimal.Zero, err
	}

	d, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil {
		return decimal.Zero, errors.ErrInvalidFieldValue.WithCause(err)
	}
	return d, nil
}

// ReadPassword prompts for a password, without echo on a terminal.
// The no-echo read bypasses the line buffer, so while typed-ahead input is
// still buffered the password is taken from the buffer like any other line.
func (p *Prompter) ReadPassword(prompt string) (string, error) {
	if p.readNoEcho == nil || p.in.Buffered() > 0 {
		return p.ReadLine(prompt)
	}

	fmt.Fprint(p.out, prompt)
	b, err := p.readNoEcho()
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
