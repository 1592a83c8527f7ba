package operations

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/htmlpatch/internal/gate"
	"github.com/jonathan/htmlpatch/internal/matching"
	"github.com/jonathan/htmlpatch/internal/mutate"
	"github.com/jonathan/htmlpatch/internal/patch"
	"github.com/jonathan/htmlpatch/internal/report"
)

// SearchHref is the local page the sidebar search entry should point at.
const SearchHref = "/search.html"

// ConvertFQDNLinks rewrites absolute links to hosts onto local .html paths.
// It is a bulk rewrite: zero or many convertible links are both success.
func ConvertFQDNLinks(hosts []string) *patch.Operation {
	return &patch.Operation{
		Name:        "convert-fqdn-links",
		Description: "Convert absolute site links to local .html paths",
		Verb:        "convert",
		Action:      patch.ActionRewrite,
		Bulk:        true,
		Targets: []patch.Target{{
			Name: "links",
			Want: gate.Unbounded,
			Fingerprint: matching.Fingerprint{
				Selector: "a[href]",
				Filter:   matching.LocalizableHref(hosts),
			},
		}},
		Attr: "href",
		Value: func(s *goquery.Selection) (string, bool) {
			href, _ := s.Attr("href")
			return matching.LocalHTMLHref(href, hosts)
		},
		BulkFields: func(c patch.BulkCounts, mode patch.Mode) []report.Field {
			if mode == patch.Apply {
				return []report.Field{{Key: "converted_links", N: c.Changed}}
			}
			return []report.Field{{Key: "convertible_links", N: c.Pending}}
		},
	}
}

// ConvertSearchMenuLink points the sidebar search entry at /search.html.
// Links already pointing there are counted but left alone.
func ConvertSearchMenuLink() *patch.Operation {
	return &patch.Operation{
		Name:        "convert-search-menu-link",
		Description: "Convert the sidebar search menu href to /search.html",
		Verb:        "convert",
		Action:      patch.ActionRewrite,
		Bulk:        true,
		Targets: []patch.Target{{
			Name: "target_links",
			Want: gate.Unbounded,
			Fingerprint: matching.Fingerprint{
				Selector: `li[data-url_match="/search"]`,
				Focus:    "a[href]",
			},
		}},
		Attr:  "href",
		Value: mutate.Const(SearchHref),
		BulkFields: func(c patch.BulkCounts, mode patch.Mode) []report.Field {
			if mode == patch.Apply {
				return []report.Field{
					{Key: "converted_links", N: c.Changed},
					{Key: "target_links", N: c.Matched},
				}
			}
			return []report.Field{
				{Key: "target_links", N: c.Matched},
				{Key: "needs_update", N: c.Pending},
			}
		},
	}
}
