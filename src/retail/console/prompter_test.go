package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/bitswalk/retail/src/common/errors"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestReadLine(t *testing.T) {
	p, out := newTestPrompter("Ann\r\nlast")

	got, err := p.ReadLine("\tEnter name: ")
	if err != nil {
		t.Fatalf("ReadLine error: %v", err)
	}
	if got != "Ann" {
		t.Errorf("expected Ann, got %q", got)
	}
	if out.String() != "\tEnter name: " {
		t.Errorf("unexpected prompt output %q", out.String())
	}

	got, err = p.ReadLine("> ")
	if err != nil || got != "last" {
		t.Errorf("expected final unterminated line, got %q (%v)", got, err)
	}

	if _, err := p.ReadLine("> "); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReadChoice_RepromptsOnInvalidInput(t *testing.T) {
	p, out := newTestPrompter("abc\n\n 7 \n")

	choice, err := p.ReadChoice()
	if err != nil {
		t.Fatalf("ReadChoice error: %v", err)
	}
	if choice != 7 {
		t.Errorf("expected 7, got %d", choice)
	}

	if n := strings.Count(out.String(), ChoicePrompt); n != 3 {
		t.Errorf("expected 3 prompts, got %d", n)
	}
	if n := strings.Count(out.String(), "Your input is invalid!"); n != 2 {
		t.Errorf("expected 2 invalid input messages, got %d", n)
	}
}

func TestReadChoice_EOF(t *testing.T) {
	p, _ := newTestPrompter("x\n")

	if _, err := p.ReadChoice(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReadNumbers(t *testing.T) {
	p, _ := newTestPrompter("42\n12.5\n3.10\nnope\n")

	n, err := p.ReadInt("id: ")
	if err != nil || n != 42 {
		t.Errorf("ReadInt = %d, %v", n, err)
	}

	f, err := p.ReadFloat("lat: ")
	if err != nil || f != 12.5 {
		t.Errorf("ReadFloat = %v, %v", f, err)
	}

	d, err := p.ReadDecimal("cost: ")
	if err != nil || d.String() != "3.1" {
		t.Errorf("ReadDecimal = %s, %v", d, err)
	}

	if _, err := p.ReadInt("units: "); !errors.Is(err, errors.ErrInvalidFieldValue) {
		t.Errorf("expected ErrInvalidFieldValue, got %v", err)
	}
}

func TestReadPassword_NotATerminal(t *testing.T) {
	p, out := newTestPrompter("s3cret\n")

	pw, err := p.ReadPassword("\tEnter password: ")
	if err != nil {
		t.Fatalf("ReadPassword error: %v", err)
	}
	if pw != "s3cret" {
		t.Errorf("expected s3cret, got %q", pw)
	}
	if out.String() != "\tEnter password: " {
		t.Errorf("unexpected prompt %q", out.String())
	}
}

func TestReadPassword_TerminalPrefersBufferedInput(t *testing.T) {
	p, _ := newTestPrompter("Ann\ntyped-ahead\n")
	calls := 0
	p.readNoEcho = func() ([]byte, error) {
		calls++
		return []byte("from-terminal"), nil
	}

	if _, err := p.ReadLine("name: "); err != nil {
		t.Fatalf("ReadLine error: %v", err)
	}

	pw, err := p.ReadPassword("password: ")
	if err != nil {
		t.Fatalf("ReadPassword error: %v", err)
	}
	if pw != "typed-ahead" {
		t.Errorf("expected buffered line, got %q", pw)
	}
	if calls != 0 {
		t.Errorf("terminal read while input was buffered")
	}

	// buffer drained: the next password comes from the terminal
	pw, err = p.ReadPassword("password: ")
	if err != nil {
		t.Fatalf("ReadPassword error: %v", err)
	}
	if pw != "from-terminal" || calls != 1 {
		t.Errorf("expected terminal read, got %q after %d calls", pw, calls)
	}
}
