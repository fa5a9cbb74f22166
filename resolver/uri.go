package resolver

import (
	"net/url"
	"strings"

	"github.com/hollowpine/schemacore/node"
)

// Normalize merges a relative pointer p with the base scope s into an
// absolute URI.
func Normalize(p string, s node.Scope) string {
	switch {
	case strings.HasPrefix(p, "#"):
		if s.ID == "" {
			return p
		}
		return strings.TrimSuffix(s.ID, "#") + p
	case hasScheme(p):
		if !strings.Contains(p, "#") && !strings.HasSuffix(p, "/") {
			return p + "#"
		}
		return p
	default:
		var base string
		if s.IsRoot() {
			base = deriveBaseURI(s.ID)
		} else {
			base = s.ID
		}
		var out string
		if strings.HasSuffix(base, "/") {
			out = base + p
		} else {
			out = base + "/" + p
		}
		if !strings.Contains(p, "#") && !strings.HasSuffix(p, "/") {
			out += "#"
		}
		return out
	}
}

// deriveBaseURI derives a base URI from an active id: scheme://host[:port]
// when a host is present, otherwise the directory portion of the path
// component (e.g. for file: URLs).
func deriveBaseURI(id string) string {
	if id == "" {
		return ""
	}
	u, err := url.Parse(id)
	if err != nil {
		return id
	}
	if u.Host != "" {
		return u.Scheme + "://" + u.Host
	}
	path := u.Opaque
	if path == "" {
		path = u.Path
	}
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		dir := path[:idx+1]
		if u.Scheme != "" {
			return u.Scheme + ":" + dir
		}
		return dir
	}
	return id
}

// hasScheme reports whether p parses as an absolute URI with a scheme,
// using the same permissive scheme extraction as the registry.
func hasScheme(p string) bool {
	return ExtractScheme(p) != ""
}

// splitFragment splits s into its URI portion and fragment portion (without
// the leading '#'); fragment is "" when s has no '#'.
func splitFragment(s string) (uri, fragment string) {
	if idx := strings.IndexByte(s, '#'); idx >= 0 {
		return s[:idx], s[idx+1:]
	}
	return s, ""
}
