package resolver

import (
	"net/url"
	"strings"
)

// TokenizeFragment extracts the portion of uri after the first '#' (or the
// whole string if uri has no '#'), splits on '/', and JSON-Pointer-unescapes
// then percent-decodes each segment. The leading empty segment produced by a
// leading '/' is preserved; callers (the resolver's step loop) skip it.
func TokenizeFragment(uri string) []string {
	frag := uri
	if idx := strings.IndexByte(uri, '#'); idx >= 0 {
		frag = uri[idx+1:]
	}
	if frag == "" {
		return nil
	}
	parts := strings.Split(frag, "/")
	out := make([]string, len(parts))
	unescaper := strings.NewReplacer("~1", "/", "~0", "~")
	for i, seg := range parts {
		unescaped := unescaper.Replace(seg)
		if decoded, err := url.PathUnescape(unescaped); err == nil {
			out[i] = decoded
		} else {
			out[i] = unescaped
		}
	}
	return out
}
