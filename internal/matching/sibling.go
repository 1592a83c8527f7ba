package matching

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// NextElementSibling returns the element that follows s, skipping text and
// comment nodes that hold only whitespace. Any other node in between breaks
// the relation and yields nil.
func NextElementSibling(s *goquery.Selection) *goquery.Selection {
	if s.Length() == 0 {
		return nil
	}

	for n := s.Get(0).NextSibling; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.TextNode, html.CommentNode:
			if strings.TrimSpace(n.Data) == "" {
				continue
			}
			return nil
		case html.ElementNode:
			return s.NextAll().FilterNodes(n)
		default:
			continue
		}
	}

	return nil
}
