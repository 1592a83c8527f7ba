package operations

import (
	"github.com/jonathan/htmlpatch/internal/gate"
	"github.com/jonathan/htmlpatch/internal/matching"
	"github.com/jonathan/htmlpatch/internal/patch"
)

const (
	commentAuthText = "コメント投稿には、twitter認証が必要です。"
	authButtonText  = "Twitter認証"
	authHref        = "https://unkode-mania.net/auth"
)

// twitterAuthButton is <a class="btn btn-primary" href=".../auth">Twitter認証</a>.
var twitterAuthButton = matching.All(
	matching.IsTag("a"),
	matching.TextEquals(authButtonText),
	matching.AttrEquals("href", authHref),
	matching.HasClasses("btn", "btn-primary"),
)

// RemoveCommentTwitterAuthPrompt removes the comment sign-in prompt paragraph
// together with the auth button directly following it.
func RemoveCommentTwitterAuthPrompt() *patch.Operation {
	return &patch.Operation{
		Name:        "remove-comment-twitter-auth-prompt",
		Description: "Delete the comment Twitter-auth prompt and its button",
		Verb:        "delete",
		Action:      patch.ActionRemove,
		Targets: []patch.Target{{
			Name: "prompt_pair",
			Want: gate.ExactlyOne,
			Fingerprint: matching.Fingerprint{
				Selector: "p",
				Filter:   matching.TextEquals(commentAuthText),
				Pair:     twitterAuthButton,
			},
		}},
		Done: "removed %d prompt pair",
	}
}
