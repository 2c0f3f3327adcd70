// Package output renders console results: menus, query tables in plain,
// aligned table, JSON or YAML form, and user-facing errors.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bitswalk/retail/src/common/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format selects how query results are rendered
type Format string

const (
	// FormatPlain prints tab-separated columns, header first
	FormatPlain Format = "plain"
	// FormatTable prints aligned columns
	FormatTable Format = "table"
	// FormatJSON prints one JSON object per row inside an array
	FormatJSON Format = "json"
	// FormatYAML prints a YAML sequence of rows
	FormatYAML Format = "yaml"
)

// ParseFormat parses an output format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPlain, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatPlain, nil
	default:
		return "", errors.ErrInvalidFieldValue.WithMessagef("Unknown output format %q (plain, table, json, yaml)", s)
	}
}

// Printer writes console output to out and diagnostics to errOut
type Printer struct {
	out      io.Writer
	errOut   io.Writer
	format   Format
	renderer *lipgloss.Renderer
}

// New creates a Printer
func New(out, errOut io.Writer, format Format) *Printer {
	if format == "" {
		format = FormatPlain
	}
	return &Printer{
		out:      out,
		errOut:   errOut,
		format:   format,
		renderer: lipgloss.NewRenderer(out),
	}
}

// Format returns the result format
func (p *Printer) Format() Format {
	return p.format
}

// Structured reports whether results are machine readable (json or yaml)
func (p *Printer) Structured() bool {
	return p.format == FormatJSON || p.format == FormatYAML
}

// Out returns the console writer
func (p *Printer) Out() io.Writer {
	return p.out
}

// PrintTable writes a header row followed by the data rows in the configured format
func (p *Printer) PrintTable(headers []string, rows [][]string) error {
	switch p.format {
	case FormatJSON:
		return p.PrintJSON(records(headers, rows))
	case FormatYAML:
		return p.PrintYAML(records(headers, rows))
	case FormatTable:
		return p.printAligned(headers, rows)
	default:
		return p.printPlain(headers, rows)
	}
}

func (p *Printer) printPlain(headers []string, rows [][]string) error {
	if _, err := fmt.Fprintln(p.out, strings.Join(headers, "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(p.out, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printAligned(headers []string, rows [][]string) error {
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return w.Flush()
}

func records(headers []string, rows [][]string) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out
}

// PrintJSON writes data as indented JSON
func (p *Printer) PrintJSON(data interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// PrintYAML writes data as YAML
func (p *Printer) PrintYAML(data interface{}) error {
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

// PrintMessage writes a line to the console
func (p *Printer) PrintMessage(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Printf writes formatted text to the console without a trailing newline
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// PrintError reports an error. User-facing errors are shown on the console,
// as a response object in json and yaml formats; anything else goes to errOut.
func (p *Printer) PrintError(err error) {
	if err == nil {
		return
	}

	if !errors.IsUserFacing(err) {
		fmt.Fprintf(p.errOut, "Error: %v\n", err)
		return
	}

	switch p.format {
	case FormatJSON:
		_ = p.PrintJSON(errors.NewResponse(err))
	case FormatYAML:
		_ = p.PrintYAML(errors.NewResponse(err))
	default:
		var e *errors.Error
		errors.As(err, &e)
		fmt.Fprintln(p.out, e.Message)
	}
}

// Banner prints the greeting shown when the console starts
func (p *Printer) Banner(title string) {
	style := p.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4")).
		Border(lipgloss.DoubleBorder(), true, false).
		Padding(0, 14)

	fmt.Fprintf(p.out, "\n\n%s\n\n", style.Render(title))
}

// Menu prints a titled, numbered list of entries
func (p *Printer) Menu(title string, entries []string) {
	style := p.renderer.NewStyle().Bold(true)

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, style.Render(title))
	fmt.Fprintln(p.out, strings.Repeat("-", len(title)))
	for _, e := range entries {
		fmt.Fprintln(p.out, e)
	}
}
