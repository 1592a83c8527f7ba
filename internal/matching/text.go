package matching

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// NormalizedText returns the text content of every node in s.
// Each text node is trimmed, empty pieces are dropped and the remainder is
// joined by a single space with internal whitespace runs collapsed.
// Comments do not contribute.
func NormalizedText(s *goquery.Selection) string {
	pieces := make([]string, 0)
	for _, n := range s.Nodes {
		pieces = collectText(n, pieces)
	}
	return strings.Join(pieces, " ")
}

func collectText(n *html.Node, pieces []string) []string {
	if n.Type == html.TextNode {
		if fields := strings.Fields(n.Data); len(fields) > 0 {
			pieces = append(pieces, strings.Join(fields, " "))
		}
		return pieces
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		pieces = collectText(c, pieces)
	}
	return pieces
}
