package patch

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jonathan/htmlpatch/internal/document"
	"github.com/jonathan/htmlpatch/internal/observability"
	"github.com/jonathan/htmlpatch/internal/report"
	"github.com/jonathan/htmlpatch/internal/schemas"
)

// Runner executes operations against files on disk.
type Runner struct {
	Out     io.Writer
	Err     io.Writer
	JSON    bool
	Verbose bool
}

// NewRunner creates a Runner writing to stdout and stderr.
func NewRunner() *Runner {
	return &Runner{Out: os.Stdout, Err: os.Stderr}
}

// Execute runs op in mode against the file at path, prints exactly one
// summary line and returns the process exit code. The file is rewritten only
// after every in-memory step has succeeded and something actually changed.
func (r *Runner) Execute(op *Operation, mode Mode, path string) int {
	modeName := op.ModeName(mode)

	doc, err := document.Load(path)
	if err != nil {
		return r.fail(modeName, err)
	}

	res := op.Run(doc, mode)
	r.trace(op, res)

	if mode == Apply && res.Mutated() {
		if err := document.Save(path, doc); err != nil {
			return r.fail(modeName, err)
		}
	}

	summary := op.Summarize(res, mode, path)
	if err := r.print(summary); err != nil {
		return r.fail(modeName, err)
	}
	return summary.ExitCode()
}

func (r *Runner) print(s report.Summary) error {
	if !r.JSON {
		_, err := io.WriteString(r.Out, s.Line()+"\n")
		return err
	}

	out, err := s.JSON()
	if err != nil {
		return err
	}

	// Validate output against schema (non-fatal)
	if err := schemas.ValidateJSONString(schemas.SummarySchema, string(out)); err != nil {
		_, _ = fmt.Fprintf(r.Err, "Warning: summary does not validate against schema: %v\n", err)
	}

	_, err = r.Out.Write(append(out, '\n'))
	return err
}

func (r *Runner) fail(modeName string, err error) int {
	_, _ = io.WriteString(r.Err, report.ErrorLine(modeName, err)+"\n")
	return report.ExitProcessing
}

func (r *Runner) trace(op *Operation, res Result) {
	if !r.Verbose {
		return
	}

	logger := log.New(r.Err, "", log.LstdFlags)
	for i, c := range res.Counts {
		logger.Printf("[MATCH] %s: target=%s selector=%q want=%s count=%d",
			op.Name, c.Name, op.Targets[i].Fingerprint.Selector, c.Want, c.N)
	}
	if op.Bulk {
		logger.Printf("[GATE] %s: bulk rewrite, matched=%d pending=%d", op.Name, res.Bulk.Matched, res.Bulk.Pending)
	} else {
		logger.Printf("[GATE] %s: verdict=%s", op.Name, res.Verdict)
	}
	logger.Printf("[MUTATE] %s: outcome=%s changed=%d", op.Name, res.Outcome, res.Changed)

	observability.NewPrinter(r.Err).PrintMatchSummary(op.Name, res.Counts, res.Verdict)
}
