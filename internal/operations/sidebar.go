package operations

import (
	"github.com/jonathan/htmlpatch/internal/gate"
	"github.com/jonathan/htmlpatch/internal/matching"
	"github.com/jonathan/htmlpatch/internal/patch"
)

// menuItem matches a sidebar <li> by its route attribute and link label.
func menuItem(name, route, label string) patch.Target {
	return patch.Target{
		Name: name,
		Want: gate.ExactlyOne,
		Fingerprint: matching.Fingerprint{
			Selector: `li[data-url_match="` + route + `"]`,
			Filter:   matching.FirstDescendant("a[href]", matching.TextEquals(label)),
		},
	}
}

// RemoveSidebarRecentMenuItems removes the hot, new and new_comments entries,
// all three or none.
func RemoveSidebarRecentMenuItems() *patch.Operation {
	return &patch.Operation{
		Name:        "remove-sidebar-recent-menu-items",
		Description: "Delete the hot/new/new_comments sidebar menu items",
		Verb:        "delete",
		Action:      patch.ActionRemove,
		Targets: []patch.Target{
			menuItem("hot", "/hot", "人気ウンコード"),
			menuItem("new", "/new$", "新着ウンコード"),
			menuItem("new_comments", "/new_comments", "新着コメント"),
		},
		Done: "removed %d items",
	}
}

// RemoveSidebarWriteMenuItems removes the "ウンコードを書く" header and the
// register entry below it, both or neither.
func RemoveSidebarWriteMenuItems() *patch.Operation {
	return &patch.Operation{
		Name:        "remove-sidebar-write-menu-items",
		Description: "Delete the sidebar write-menu header and register item",
		Verb:        "delete",
		Action:      patch.ActionRemove,
		Targets: []patch.Target{
			{
				Name: "write_header",
				Want: gate.ExactlyOne,
				Fingerprint: matching.Fingerprint{
					Selector: "li.nav-header",
					Filter:   matching.TextEquals("ウンコードを書く"),
				},
			},
			{
				Name: "register_item",
				Want: gate.ExactlyOne,
				Fingerprint: matching.Fingerprint{
					Selector: `li[data-url_match="/register"]`,
					Filter:   matching.FirstDescendant("a.register-link", matching.TextEquals("投稿する")),
				},
			},
		},
		Done: "removed %d items",
	}
}
