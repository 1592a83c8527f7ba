package operations

import (
	"golang.org/x/net/html"

	"github.com/jonathan/htmlpatch/internal/gate"
	"github.com/jonathan/htmlpatch/internal/matching"
	"github.com/jonathan/htmlpatch/internal/mutate"
	"github.com/jonathan/htmlpatch/internal/patch"
)

// AllContentItem is the menu entry inserted after the Cobol entry.
var AllContentItem = mutate.Element{
	Tag:   "li",
	Attrs: []html.Attribute{{Key: "data-url_match", Val: "/lang/All$"}},
	Children: []mutate.Element{{
		Tag:   "a",
		Attrs: []html.Attribute{{Key: "href", Val: "/lang/All.html"}},
		Children: []mutate.Element{
			{Tag: "i", Attrs: []html.Attribute{{Key: "class", Val: "icon-list-alt"}}},
			{Text: "全て"},
		},
	}},
}

// InsertAllContentMenuItem inserts the "全て" language entry right after the
// Cobol entry, provided Cobol appears once and no "全て" entry exists yet.
func InsertAllContentMenuItem() *patch.Operation {
	return &patch.Operation{
		Name:        "insert-all-content-menu-item",
		Description: "Insert the 全て menu item after the Cobol menu item",
		Verb:        "insert",
		Action:      patch.ActionInsertAfter,
		Targets: []patch.Target{
			{
				Name:        "cobol",
				Want:        gate.ExactlyOne,
				Fingerprint: matching.Fingerprint{Selector: `li[data-url_match="/lang/Cobol$"]`},
			},
			{
				Name:        "all",
				Want:        gate.Absent,
				Fingerprint: matching.Fingerprint{Selector: `li[data-url_match="/lang/All$"]`},
			},
		},
		Anchor: "cobol",
		Insert: AllContentItem,
		Done:   "inserted %d item",
	}
}
