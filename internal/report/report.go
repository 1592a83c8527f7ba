// Package report formats the one-line summary of an operation run and maps
// verdicts onto process exit codes.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/htmlpatch/internal/gate"
)

// Exit codes shared by every operation.
const (
	ExitOK         = 0
	ExitNotFound   = 1
	ExitAmbiguous  = 2
	ExitProcessing = 3
)

// Outcome is the terminal state of a run.
type Outcome string

const (
	Checked Outcome = "checked"
	Mutated Outcome = "mutated"
	Skipped Outcome = "skipped"
	Aborted Outcome = "aborted"
)

// Field is one reported counter.
type Field struct {
	Key string `json:"key"`
	N   int    `json:"n"`
}

// Summary describes one run of one operation against one file.
type Summary struct {
	Operation string       `json:"operation"`
	Mode      string       `json:"mode"`
	Path      string       `json:"path"`
	Verdict   gate.Verdict `json:"verdict"`
	Outcome   Outcome      `json:"outcome"`
	Fields    []Field      `json:"fields"`
	// Action describes a completed mutation, e.g. "removed 3 items".
	// Bulk rewrites leave it empty and report their fields instead.
	Action string `json:"action,omitempty"`
}

// ExitCode maps the verdict onto the shared status contract.
func (s Summary) ExitCode() int {
	return ExitCode(s.Verdict)
}

// ExitCode maps v onto the shared status contract.
func ExitCode(v gate.Verdict) int {
	switch v {
	case gate.OK:
		return ExitOK
	case gate.NotFound:
		return ExitNotFound
	case gate.Ambiguous:
		return ExitAmbiguous
	default:
		return ExitProcessing
	}
}

// Line renders the summary in the fixed text format.
func (s Summary) Line() string {
	head := fmt.Sprintf("%s %s:", strings.ToUpper(s.Mode), s.Path)
	fields := FormatFields(s.Fields)

	switch s.Outcome {
	case Skipped, Aborted:
		return fmt.Sprintf("%s %s (%s)", head, s.Outcome, fields)
	case Mutated:
		if s.Action != "" {
			return fmt.Sprintf("%s %s", head, s.Action)
		}
	}
	return fmt.Sprintf("%s %s", head, fields)
}

// JSON renders the summary as a single JSON object.
func (s Summary) JSON() ([]byte, error) {
	if s.Fields == nil {
		s.Fields = []Field{}
	}
	return json.Marshal(s)
}

// FormatFields renders fields as "key=n, key=n".
func FormatFields(fields []Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%d", f.Key, f.N))
	}
	return strings.Join(parts, ", ")
}

// FromCounts turns gate counts into report fields.
func FromCounts(counts []gate.Count) []Field {
	fields := make([]Field, 0, len(counts))
	for _, c := range counts {
		fields = append(fields, Field{Key: c.Name, N: c.N})
	}
	return fields
}

// ErrorLine renders a processing failure for the error stream.
func ErrorLine(mode string, err error) string {
	if mode == "" {
		return fmt.Sprintf("ERROR: %v", err)
	}
	return fmt.Sprintf("ERROR: %s failed: %v", mode, err)
}
