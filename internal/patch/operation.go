// Package patch runs guarded HTML patching operations: match, gate, mutate, report.
package patch

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/htmlpatch/internal/gate"
	"github.com/jonathan/htmlpatch/internal/matching"
	"github.com/jonathan/htmlpatch/internal/mutate"
	"github.com/jonathan/htmlpatch/internal/report"
)

// Action is the kind of mutation an operation performs.
type Action string

const (
	ActionRemove      Action = "remove"
	ActionInsertAfter Action = "insert-after"
	ActionRewrite     Action = "rewrite-attribute"
)

// Mode selects between reporting and mutating.
type Mode int

const (
	Check Mode = iota
	Apply
)

// Target is one named fragment an operation looks for.
type Target struct {
	Name        string           `validate:"required"`
	Want        gate.Cardinality `validate:"oneof=0 1 2"`
	Fingerprint matching.Fingerprint
}

// BulkCounts are the counters of an ungated rewrite.
type BulkCounts struct {
	Matched int
	Pending int
	Changed int
}

// Operation is a declarative descriptor of one patching operation.
type Operation struct {
	Name        string   `validate:"required"`
	Description string   `validate:"required"`
	Verb        string   `validate:"required,oneof=convert insert delete"`
	Action      Action   `validate:"required,oneof=remove insert-after rewrite-attribute"`
	Targets     []Target `validate:"required,min=1,dive"`

	// Bulk operations skip the cardinality gate: any count, zero included, is
	// success. Rewrites are always bulk and their single target is Unbounded.
	Bulk bool

	// Attr and Value drive ActionRewrite.
	Attr  string `validate:"required_if=Action rewrite-attribute"`
	Value mutate.ValueFunc

	// BulkFields picks the reported counters of a bulk run.
	BulkFields func(c BulkCounts, mode Mode) []report.Field

	// Anchor names the target the new node goes after; Insert describes it.
	Anchor string `validate:"required_if=Action insert-after"`
	Insert mutate.Element

	// Done is the format of the success line after a guarded mutation; it
	// receives the number of fragments touched.
	Done string `validate:"required_unless=Bulk true"`
}

var validate = validator.New()

// Validate checks the descriptor for internal consistency.
func (o *Operation) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid operation %q: %w", o.Name, err)
	}

	if o.Bulk != (o.Action == ActionRewrite) {
		return fmt.Errorf("invalid operation %q: rewrites and only rewrites are bulk", o.Name)
	}
	if o.Bulk && len(o.Targets) != 1 {
		return fmt.Errorf("invalid operation %q: bulk rewrites take exactly one target", o.Name)
	}
	if o.Action == ActionRewrite && o.Value == nil {
		return fmt.Errorf("invalid operation %q: rewrite needs a value function", o.Name)
	}
	for _, t := range o.Targets {
		if (t.Want == gate.Unbounded) != o.Bulk {
			return fmt.Errorf("invalid operation %q: target %q: only bulk targets are unbounded", o.Name, t.Name)
		}
	}
	if o.Bulk && o.BulkFields == nil {
		return fmt.Errorf("invalid operation %q: bulk rewrite needs reported fields", o.Name)
	}
	if o.Action == ActionInsertAfter {
		anchor := o.target(o.Anchor)
		if anchor == nil || anchor.Want != gate.ExactlyOne {
			return fmt.Errorf("invalid operation %q: anchor %q must be a target required exactly once", o.Name, o.Anchor)
		}
		if o.Insert.Tag == "" {
			return fmt.Errorf("invalid operation %q: nothing to insert", o.Name)
		}
	}

	return nil
}

func (o *Operation) target(name string) *Target {
	for i := range o.Targets {
		if o.Targets[i].Name == name {
			return &o.Targets[i]
		}
	}
	return nil
}

// ParseMode accepts "check" or the operation's apply verb.
func (o *Operation) ParseMode(s string) (Mode, error) {
	switch s {
	case "check":
		return Check, nil
	case o.Verb:
		return Apply, nil
	default:
		return Check, fmt.Errorf("unknown mode %q for %s (want check or %s)", s, o.Name, o.Verb)
	}
}

// ModeName returns the user-facing name of mode.
func (o *Operation) ModeName(mode Mode) string {
	if mode == Apply {
		return o.Verb
	}
	return "check"
}
