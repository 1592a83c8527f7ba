// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/htmlpatch/internal/gate"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines on a rune boundary
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchSummary outputs the per-target counts of one run and the verdict
// they aggregate to.
func (p *Printer) PrintMatchSummary(operation string, counts []gate.Count, verdict gate.Verdict) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Operation: %s\n", operation))
	sb.WriteString("\n")

	if len(counts) > 0 {
		sb.WriteString("Targets:\n")
		for _, c := range counts {
			if c.Want == gate.Unbounded {
				sb.WriteString(fmt.Sprintf("  • %-16s %d (ungated)\n", c.Name, c.N))
				continue
			}
			sb.WriteString(fmt.Sprintf("  • %-16s %d (want %s → %s)\n",
				c.Name, c.N, c.Want, gate.Classify(c.Want, c.N)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Verdict:   %s", verdict))

	p.printBox("MATCH SUMMARY", sb.String())
}
