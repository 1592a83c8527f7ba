package matching

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TextEquals matches elements whose normalized text equals want.
func TextEquals(want string) Predicate {
	return func(s *goquery.Selection) bool {
		return NormalizedText(s) == want
	}
}

// TextContains matches elements whose normalized text contains sub.
func TextContains(sub string) Predicate {
	return func(s *goquery.Selection) bool {
		return strings.Contains(NormalizedText(s), sub)
	}
}

// AttrEquals matches elements carrying attribute name with exactly value.
// A missing attribute never matches.
func AttrEquals(name, value string) Predicate {
	return func(s *goquery.Selection) bool {
		got, ok := s.Attr(name)
		return ok && got == value
	}
}

// HasClasses matches elements whose class token set contains every token.
func HasClasses(tokens ...string) Predicate {
	return func(s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		if !ok {
			return false
		}
		have := make(map[string]bool)
		for _, tok := range strings.Fields(class) {
			have[tok] = true
		}
		for _, tok := range tokens {
			if !have[tok] {
				return false
			}
		}
		return true
	}
}

// HasDescendant matches elements with at least one descendant matching selector.
func HasDescendant(selector string) Predicate {
	return func(s *goquery.Selection) bool {
		return s.Find(selector).Length() > 0
	}
}

// FirstDescendant matches elements whose first descendant matching selector
// satisfies p. Elements without such a descendant are excluded.
func FirstDescendant(selector string, p Predicate) Predicate {
	return func(s *goquery.Selection) bool {
		first := s.Find(selector).First()
		if first.Length() == 0 {
			return false
		}
		return p(first)
	}
}

// IsTag matches elements with the given tag name.
func IsTag(name string) Predicate {
	return func(s *goquery.Selection) bool {
		return goquery.NodeName(s) == name
	}
}

// All matches when every predicate matches.
func All(ps ...Predicate) Predicate {
	return func(s *goquery.Selection) bool {
		for _, p := range ps {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

// Any matches when at least one predicate matches.
func Any(ps ...Predicate) Predicate {
	return func(s *goquery.Selection) bool {
		for _, p := range ps {
			if p(s) {
				return true
			}
		}
		return false
	}
}
