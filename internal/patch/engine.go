package patch

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/htmlpatch/internal/gate"
	"github.com/jonathan/htmlpatch/internal/matching"
	"github.com/jonathan/htmlpatch/internal/mutate"
	"github.com/jonathan/htmlpatch/internal/report"
)

// Result is the outcome of running an operation against one document.
type Result struct {
	Counts  []gate.Count
	Verdict gate.Verdict
	Outcome report.Outcome
	Bulk    BulkCounts
	// Changed is the number of fragments (or attributes) mutated.
	Changed int
}

// Mutated reports whether the document tree was modified.
func (r Result) Mutated() bool {
	return r.Outcome == report.Mutated && r.Changed > 0
}

// Match evaluates every target fingerprint against doc. Check and apply both
// go through here, so they always see the same match sets.
func (o *Operation) Match(doc *goquery.Document) []matching.MatchSet {
	sets := make([]matching.MatchSet, len(o.Targets))
	for i, t := range o.Targets {
		sets[i] = matching.Find(doc, t.Fingerprint)
	}
	return sets
}

// Run matches, gates and, in apply mode with an ok verdict, mutates doc.
// Counts are taken before any mutation.
func (o *Operation) Run(doc *goquery.Document, mode Mode) Result {
	sets := o.Match(doc)

	counts := make([]gate.Count, len(o.Targets))
	for i, t := range o.Targets {
		counts[i] = gate.Count{Name: t.Name, Want: t.Want, N: sets[i].Len()}
	}

	if o.Bulk {
		return o.runBulk(sets[0], counts, mode)
	}

	res := Result{Counts: counts, Verdict: gate.Aggregate(counts)}

	switch {
	case mode == Check:
		res.Outcome = report.Checked
		return res
	case res.Verdict == gate.Ambiguous:
		res.Outcome = report.Aborted
		return res
	case res.Verdict == gate.NotFound:
		res.Outcome = report.Skipped
		return res
	}

	res.Outcome = report.Mutated
	res.Changed = o.mutate(sets)
	return res
}

func (o *Operation) runBulk(ms matching.MatchSet, counts []gate.Count, mode Mode) Result {
	res := Result{
		Counts:  counts,
		Verdict: gate.OK,
		Bulk: BulkCounts{
			Matched: ms.Len(),
			Pending: mutate.Pending(ms, o.Attr, o.Value),
		},
	}

	if mode == Check {
		res.Outcome = report.Checked
		return res
	}

	res.Outcome = report.Mutated
	res.Changed = mutate.RewriteAttr(ms, o.Attr, o.Value)
	res.Bulk.Changed = res.Changed
	return res
}

// mutate applies the operation's action once the whole group has passed the gate.
func (o *Operation) mutate(sets []matching.MatchSet) int {
	switch o.Action {
	case ActionInsertAfter:
		for i, t := range o.Targets {
			if t.Name == o.Anchor {
				return mutate.InsertAfter(sets[i][0].Node, o.Insert.Build())
			}
		}
		return 0

	case ActionRemove:
		removed := 0
		for i, t := range o.Targets {
			if t.Want == gate.ExactlyOne {
				removed += mutate.Remove(sets[i])
			}
		}
		return removed

	default:
		panic(fmt.Sprintf("patch: unknown action %q", o.Action))
	}
}

// Summarize turns a result into the reported summary for path.
func (o *Operation) Summarize(res Result, mode Mode, path string) report.Summary {
	s := report.Summary{
		Operation: o.Name,
		Mode:      o.ModeName(mode),
		Path:      path,
		Verdict:   res.Verdict,
		Outcome:   res.Outcome,
	}

	if o.Bulk {
		s.Fields = o.BulkFields(res.Bulk, mode)
		return s
	}

	s.Fields = report.FromCounts(res.Counts)
	if res.Outcome == report.Mutated {
		s.Action = fmt.Sprintf(o.Done, res.Changed)
	}
	return s
}
