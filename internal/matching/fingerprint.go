// Package matching locates fingerprinted fragments in a parsed HTML document.
package matching

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Predicate decides whether a candidate element belongs to a target class.
// Predicates must be pure: they never mutate the tree.
type Predicate func(s *goquery.Selection) bool

// Fingerprint identifies a target fragment: a structural CSS selector narrowed
// by an optional filter, an optional focus selector and an optional paired sibling.
type Fingerprint struct {
	// Selector is the structural selector (tag, attribute and class constraints).
	Selector string `validate:"required"`
	// Filter further restricts the candidates. Nil accepts every candidate.
	Filter Predicate
	// Focus, when set, moves the match onto the first descendant matching it.
	// Candidates without such a descendant are excluded.
	Focus string
	// Pair, when set, requires the next non-whitespace sibling element to
	// satisfy it. The sibling is reported alongside the match.
	Pair Predicate
}

// Match is one matched fragment.
type Match struct {
	Node   *goquery.Selection
	Paired *goquery.Selection
}

// MatchSet is the ordered sequence of fragments satisfying one fingerprint.
type MatchSet []Match

// Len returns the number of matched fragments.
func (ms MatchSet) Len() int {
	return len(ms)
}

// Find evaluates fp against doc and returns the matches in document order.
func Find(doc *goquery.Document, fp Fingerprint) MatchSet {
	return FindIn(doc.Selection, fp)
}

// FindIn evaluates fp against the descendants of root.
func FindIn(root *goquery.Selection, fp Fingerprint) MatchSet {
	matches := make(MatchSet, 0)

	root.Find(fp.Selector).Each(func(_ int, s *goquery.Selection) {
		if fp.Filter != nil && !fp.Filter(s) {
			return
		}

		node := s
		if fp.Focus != "" {
			node = s.Find(fp.Focus).First()
			if node.Length() == 0 {
				return
			}
		}

		m := Match{Node: node}
		if fp.Pair != nil {
			next := NextElementSibling(s)
			if next == nil || !fp.Pair(next) {
				return
			}
			m.Paired = next
		}

		matches = append(matches, m)
	})

	return dedupe(matches)
}

// dedupe drops repeated nodes, which a Focus selector can produce when nested
// candidates share the same first descendant.
func dedupe(ms MatchSet) MatchSet {
	out := ms[:0]
	seen := make(map[*html.Node]bool, len(ms))
	for _, m := range ms {
		key := m.Node.Get(0)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	return out
}
