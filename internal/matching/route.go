package matching

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	langRoute = regexp.MustCompile(`^/lang/[^/]+$`)
	viewRoute = regexp.MustCompile(`^/view/[A-Za-z0-9]+$`)
)

// topLevelRoutes are the site pages that map one-to-one onto a static .html file.
var topLevelRoutes = map[string]bool{
	"/":             true,
	"/index":        true,
	"/about":        true,
	"/hot":          true,
	"/legend":       true,
	"/new":          true,
	"/new_comments": true,
	"/ranking":      true,
}

// LocalHTMLHref maps an absolute link on one of hosts onto its local static
// path, keeping the query and fragment. It reports false for any link that
// is not http(s), points elsewhere, or names a route without a static page.
// The path is used as written in href, escaped or not.
//
//	https://unkode-mania.net/about     -> /about.html
//	https://unkode-mania.net/lang/C    -> /lang/C.html
//	https://unkode-mania.net/view/ab12 -> /view/ab12.html
func LocalHTMLHref(href string, hosts []string) (string, bool) {
	scheme, authority, path, query, fragment := splitHref(href)

	if scheme != "http" && scheme != "https" {
		return "", false
	}

	// authority includes userinfo and port; both must match an allowed host.
	if !hostAllowed(authority, hosts) {
		return "", false
	}

	if path == "" {
		path = "/"
	}

	var local string
	switch {
	case path == "/" || path == "/index":
		local = "/index.html"
	case topLevelRoutes[path]:
		local = path + ".html"
	case langRoute.MatchString(path), viewRoute.MatchString(path):
		local = path + ".html"
	default:
		return "", false
	}

	if query != "" {
		local += "?" + query
	}
	if fragment != "" {
		local += "#" + fragment
	}

	return local, true
}

// splitHref breaks href into scheme, authority, path, query and fragment
// without decoding or validating escapes, so "/lang/100%" survives as is.
func splitHref(href string) (scheme, authority, path, query, fragment string) {
	rest := strings.TrimSpace(href)

	if i := strings.IndexByte(rest, ':'); i > 0 && validScheme(rest[:i]) {
		scheme, rest = strings.ToLower(rest[:i]), rest[i+1:]
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		end := strings.IndexAny(rest, "/?#")
		if end < 0 {
			end = len(rest)
		}
		authority, rest = rest[:end], rest[end:]
	}

	rest, fragment, _ = strings.Cut(rest, "#")
	path, query, _ = strings.Cut(rest, "?")
	return scheme, authority, path, query, fragment
}

func validScheme(s string) bool {
	for i, r := range s {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case i > 0 && ('0' <= r && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

func hostAllowed(host string, hosts []string) bool {
	host = strings.ToLower(host)
	for _, h := range hosts {
		if strings.ToLower(h) == host {
			return true
		}
	}
	return false
}

// LocalizableHref matches links whose href LocalHTMLHref can rewrite to a
// different value.
func LocalizableHref(hosts []string) Predicate {
	return func(s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok {
			return false
		}
		local, ok := LocalHTMLHref(href, hosts)
		return ok && local != href
	}
}
