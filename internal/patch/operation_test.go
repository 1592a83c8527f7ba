package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/htmlpatch/internal/gate"
	"github.com/jonathan/htmlpatch/internal/matching"
	"github.com/jonathan/htmlpatch/internal/mutate"
	"github.com/jonathan/htmlpatch/internal/report"
)

func removeBlockOp() *Operation {
	return &Operation{
		Name:        "remove-block",
		Description: "Delete the block",
		Verb:        "delete",
		Action:      ActionRemove,
		Targets: []Target{{
			Name:        "matches",
			Want:        gate.ExactlyOne,
			Fingerprint: matching.Fingerprint{Selector: "div.block"},
		}},
		Done: "removed %d block",
	}
}

func rewriteOp() *Operation {
	return &Operation{
		Name:        "rewrite-links",
		Description: "Rewrite links",
		Verb:        "convert",
		Action:      ActionRewrite,
		Bulk:        true,
		Targets: []Target{{
			Name:        "links",
			Want:        gate.Unbounded,
			Fingerprint: matching.Fingerprint{Selector: "a.fix"},
		}},
		Attr:  "href",
		Value: mutate.Const("/fixed.html"),
		BulkFields: func(c BulkCounts, mode Mode) []report.Field {
			if mode == Apply {
				return []report.Field{{Key: "converted", N: c.Changed}}
			}
			return []report.Field{{Key: "pending", N: c.Pending}}
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, removeBlockOp().Validate())
	assert.NoError(t, rewriteOp().Validate())
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *Operation)
	}{
		{"missing name", func(o *Operation) { o.Name = "" }},
		{"bad verb", func(o *Operation) { o.Verb = "erase" }},
		{"no targets", func(o *Operation) { o.Targets = nil }},
		{"empty selector", func(o *Operation) { o.Targets[0].Fingerprint.Selector = "" }},
		{"missing done", func(o *Operation) { o.Done = "" }},
		{"bulk remove", func(o *Operation) { o.Bulk = true }},
		{"insert without anchor", func(o *Operation) { o.Action = ActionInsertAfter }},
		{"insert with absent anchor", func(o *Operation) {
			o.Action = ActionInsertAfter
			o.Anchor = "matches"
			o.Targets[0].Want = gate.Absent
			o.Insert = mutate.Element{Tag: "li"}
		}},
		{"insert nothing", func(o *Operation) {
			o.Action = ActionInsertAfter
			o.Anchor = "matches"
		}},
		{"rewrite without attr", func(o *Operation) { o.Action = ActionRewrite }},
		{"unbounded guarded target", func(o *Operation) { o.Targets[0].Want = gate.Unbounded }},
		{"unknown cardinality", func(o *Operation) { o.Targets[0].Want = gate.Cardinality(7) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := removeBlockOp()
			tt.mutate(op)
			assert.Error(t, op.Validate())
		})
	}
}

func TestValidate_BulkNeedsFields(t *testing.T) {
	op := rewriteOp()
	op.BulkFields = nil
	assert.Error(t, op.Validate())

	op = rewriteOp()
	op.Value = nil
	assert.Error(t, op.Validate())

	op = rewriteOp()
	op.Targets = append(op.Targets, op.Targets[0])
	op.Targets[1].Name = "second"
	assert.Error(t, op.Validate())

	op = rewriteOp()
	op.Targets[0].Want = gate.ExactlyOne
	assert.Error(t, op.Validate())
}

func TestValidate_RewriteMustBeBulk(t *testing.T) {
	op := rewriteOp()
	op.Bulk = false
	op.Targets[0].Want = gate.ExactlyOne
	op.Done = "rewrote %d link"

	err := op.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rewrites and only rewrites are bulk")
}

func TestParseMode(t *testing.T) {
	op := removeBlockOp()

	mode, err := op.ParseMode("check")
	require.NoError(t, err)
	assert.Equal(t, Check, mode)

	mode, err = op.ParseMode("delete")
	require.NoError(t, err)
	assert.Equal(t, Apply, mode)

	_, err = op.ParseMode("convert")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "want check or delete")

	assert.Equal(t, "check", op.ModeName(Check))
	assert.Equal(t, "delete", op.ModeName(Apply))
}
