package operations

import (
	"github.com/jonathan/htmlpatch/internal/gate"
	"github.com/jonathan/htmlpatch/internal/matching"
	"github.com/jonathan/htmlpatch/internal/patch"
)

// RemoveMoreCodeButton removes the "もっと読む" pagination block.
func RemoveMoreCodeButton() *patch.Operation {
	return &patch.Operation{
		Name:        "remove-more-code-button",
		Description: "Delete the more-code button block",
		Verb:        "delete",
		Action:      patch.ActionRemove,
		Targets: []patch.Target{{
			Name: "matches",
			Want: gate.ExactlyOne,
			Fingerprint: matching.Fingerprint{
				Selector: "p.more-code",
				Filter: matching.FirstDescendant("a#more-code", matching.All(
					matching.TextContains("もっと読む"),
					matching.HasClasses("btn", "btn-info"),
				)),
			},
		}},
		Done: "removed %d block",
	}
}

// RemoveLoginBlock removes the header sign-in button group. Only groups that
// actually carry an auth link or the sign-in label qualify.
func RemoveLoginBlock() *patch.Operation {
	return &patch.Operation{
		Name:        "remove-login-block",
		Description: "Delete the login button block",
		Verb:        "delete",
		Action:      patch.ActionRemove,
		Targets: []patch.Target{{
			Name: "matches",
			Want: gate.ExactlyOne,
			Fingerprint: matching.Fingerprint{
				Selector: "div.btn-group.pull-right",
				Filter: matching.Any(
					matching.HasDescendant(`a[href*="/auth"]`),
					matching.TextContains("Twitterでサインイン"),
				),
			},
		}},
		Done: "removed %d block",
	}
}
