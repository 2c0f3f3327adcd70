package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/bitswalk/retail/src/common/errors"
	"gopkg.in/yaml.v3"
)

func newTestPrinter(format Format) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return New(&out, &errOut, format), &out, &errOut
}

var (
	testHeaders = []string{"storeID", "productName", "numberOfUnits"}
	testRows    = [][]string{{"1", "Widget", "8"}, {"1", "Gadget", "3"}}
)

// =============================================================================
// ParseFormat Tests
// =============================================================================

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":      FormatPlain,
		"plain": FormatPlain,
		"TABLE": FormatTable,
		"json":  FormatJSON,
		" yaml": FormatYAML,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

// =============================================================================
// PrintTable Tests
// =============================================================================

func TestPrintTable_Plain(t *testing.T) {
	p, out, _ := newTestPrinter(FormatPlain)

	if err := p.PrintTable(testHeaders, testRows); err != nil {
		t.Fatalf("PrintTable error: %v", err)
	}

	want := "storeID\tproductName\tnumberOfUnits\n1\tWidget\t8\n1\tGadget\t3\n"
	if out.String() != want {
		t.Errorf("unexpected plain output:\n%q\nwant\n%q", out.String(), want)
	}
}

func TestPrintTable_Aligned(t *testing.T) {
	p, out, _ := newTestPrinter(FormatTable)

	if err := p.PrintTable(testHeaders, testRows); err != nil {
		t.Fatalf("PrintTable error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out.String())
	}
	if strings.Contains(out.String(), "\t") {
		t.Error("aligned output should not contain tabs")
	}
	col := strings.Index(lines[0], "productName")
	if strings.Index(lines[1], "Widget") != col {
		t.Errorf("columns are not aligned:\n%s", out.String())
	}
}

func TestPrintTable_JSON(t *testing.T) {
	p, out, _ := newTestPrinter(FormatJSON)

	if err := p.PrintTable(testHeaders, testRows); err != nil {
		t.Fatalf("PrintTable error: %v", err)
	}

	var got []map[string]string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(got) != 2 || got[0]["productName"] != "Widget" || got[1]["numberOfUnits"] != "3" {
		t.Errorf("unexpected records: %v", got)
	}
}

func TestPrintTable_YAML(t *testing.T) {
	p, out, _ := newTestPrinter(FormatYAML)

	if err := p.PrintTable(testHeaders, testRows); err != nil {
		t.Fatalf("PrintTable error: %v", err)
	}

	var got []map[string]string
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML output: %v", err)
	}
	if len(got) != 2 || got[1]["productName"] != "Gadget" {
		t.Errorf("unexpected records: %v", got)
	}
}

// =============================================================================
// PrintError Tests
// =============================================================================

func TestPrintError_UserFacing(t *testing.T) {
	p, out, errOut := newTestPrinter(FormatPlain)

	p.PrintError(errors.ErrNotManager)

	if out.String() != "ERROR: Not A Manager ID\n" {
		t.Errorf("unexpected console output: %q", out.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("expected nothing on errOut, got %q", errOut.String())
	}
}

func TestPrintError_Diagnostic(t *testing.T) {
	p, out, errOut := newTestPrinter(FormatPlain)

	p.PrintError(errors.ErrDatabaseQuery.WithCause(fmt.Errorf("relation does not exist")))
	p.PrintError(fmt.Errorf("plain failure"))

	if out.Len() != 0 {
		t.Errorf("expected nothing on console, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "relation does not exist") || !strings.Contains(errOut.String(), "plain failure") {
		t.Errorf("unexpected errOut: %q", errOut.String())
	}
}

func TestPrintError_JSON(t *testing.T) {
	p, out, _ := newTestPrinter(FormatJSON)

	p.PrintError(errors.ErrInsufficientStock)

	var resp errors.Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Error != "order.insufficient_stock" || resp.Message != "Not enough inventory in store!" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestPrintError_Nil(t *testing.T) {
	p, out, errOut := newTestPrinter(FormatPlain)
	p.PrintError(nil)
	if out.Len()+errOut.Len() != 0 {
		t.Error("expected no output for nil error")
	}
}

// =============================================================================
// Banner and Menu Tests
// =============================================================================

func TestBannerAndMenu(t *testing.T) {
	p, out, _ := newTestPrinter(FormatPlain)

	p.Banner("User Interface")
	p.Menu("MAIN MENU", []string{"1. Create user", "9. < EXIT"})

	s := out.String()
	for _, want := range []string{"User Interface", "MAIN MENU", "---------", "1. Create user", "9. < EXIT"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %q in output:\n%s", want, s)
		}
	}
}

func TestStructured(t *testing.T) {
	for f, want := range map[Format]bool{FormatPlain: false, FormatTable: false, FormatJSON: true, FormatYAML: true} {
		p, _, _ := newTestPrinter(f)
		if p.Structured() != want {
			t.Errorf("%s: Structured() = %v", f, !want)
		}
	}
}
