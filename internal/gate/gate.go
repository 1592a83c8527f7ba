// Package gate classifies match counts into verdicts.
//
// A target is either required exactly once or required to be absent. Counts
// for a group of targets aggregate into one verdict where ambiguity dominates
// absence, so a document with duplicated structure is never mutated even when
// another required fragment is missing.
package gate

import "fmt"

// Verdict is the outcome of the cardinality check.
type Verdict int

const (
	// OK means every target has the expected cardinality.
	OK Verdict = iota
	// NotFound means a required fragment is missing (or a fragment that must
	// be absent is present exactly once).
	NotFound
	// Ambiguous means some target matched two or more times.
	Ambiguous
)

func (v Verdict) String() string {
	switch v {
	case OK:
		return "ok"
	case NotFound:
		return "not_found"
	case Ambiguous:
		return "ambiguous"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// MarshalText renders the verdict by name.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Cardinality is the expected number of matches for a target.
type Cardinality int

const (
	// ExactlyOne requires a single match.
	ExactlyOne Cardinality = iota
	// Absent requires no match.
	Absent
	// Unbounded accepts any count. Bulk rewrites use it.
	Unbounded
)

func (c Cardinality) String() string {
	switch c {
	case Absent:
		return "absent"
	case Unbounded:
		return "any"
	default:
		return "exactly_one"
	}
}

// Count is the number of matches found for one named target.
type Count struct {
	Name string
	Want Cardinality
	N    int
}

// Classify maps a single count onto a verdict.
func Classify(want Cardinality, n int) Verdict {
	if want == Unbounded {
		return OK
	}
	if n >= 2 {
		return Ambiguous
	}
	switch want {
	case Absent:
		if n == 0 {
			return OK
		}
		return NotFound
	default:
		if n == 1 {
			return OK
		}
		return NotFound
	}
}

// Aggregate combines per-target verdicts: ambiguous dominates not found,
// which dominates ok. An empty group is ok.
func Aggregate(counts []Count) Verdict {
	overall := OK
	for _, c := range counts {
		if v := Classify(c.Want, c.N); v > overall {
			overall = v
		}
	}
	return overall
}
