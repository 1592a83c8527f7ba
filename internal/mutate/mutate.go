// Package mutate edits a parsed document in place using nodes produced by the matcher.
package mutate

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jonathan/htmlpatch/internal/matching"
)

// ValueFunc computes the new attribute value for a matched node. Returning
// false leaves the node untouched.
type ValueFunc func(s *goquery.Selection) (string, bool)

// Const returns a ValueFunc that always yields value.
func Const(value string) ValueFunc {
	return func(*goquery.Selection) (string, bool) {
		return value, true
	}
}

// Pending reports how many matches would change under value.
func Pending(ms matching.MatchSet, attr string, value ValueFunc) int {
	n := 0
	for _, m := range ms {
		if _, changes := next(m.Node, attr, value); changes {
			n++
		}
	}
	return n
}

// RewriteAttr sets attr on every match whose current value differs from the
// computed one and returns the number of nodes changed.
func RewriteAttr(ms matching.MatchSet, attr string, value ValueFunc) int {
	changed := 0
	for _, m := range ms {
		v, changes := next(m.Node, attr, value)
		if !changes {
			continue
		}
		m.Node.SetAttr(attr, v)
		changed++
	}
	return changed
}

func next(s *goquery.Selection, attr string, value ValueFunc) (string, bool) {
	v, ok := value(s)
	if !ok {
		return "", false
	}
	cur, exists := s.Attr(attr)
	return v, !exists || cur != v
}

// Remove detaches every match and its paired node from the tree and returns
// the number of fragments removed. A removed node must not be queried again.
func Remove(ms matching.MatchSet) int {
	for _, m := range ms {
		m.Node.Remove()
		if m.Paired != nil {
			m.Paired.Remove()
		}
	}
	return len(ms)
}

// InsertAfter places node as the immediate next sibling of anchor.
func InsertAfter(anchor *goquery.Selection, node *html.Node) int {
	if anchor.Length() == 0 {
		return 0
	}
	anchor.First().AfterNodes(node)
	return 1
}

// Element is a declarative description of a node tree to build.
type Element struct {
	Tag      string
	Attrs    []html.Attribute
	Children []Element
	// Text, when set, makes this a text node; Tag and Attrs are ignored.
	Text string
}

// Build constructs a detached node tree from e.
func (e Element) Build() *html.Node {
	if e.Tag == "" {
		return &html.Node{Type: html.TextNode, Data: e.Text}
	}

	n := &html.Node{
		Type:     html.ElementNode,
		Data:     e.Tag,
		DataAtom: atom.Lookup([]byte(e.Tag)),
	}
	n.Attr = append(n.Attr, e.Attrs...)
	for _, c := range e.Children {
		n.AppendChild(c.Build())
	}
	return n
}
