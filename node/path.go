package node

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is an ordered sequence of JSON-Pointer segments (RFC 6901), used for
// both the schema path and the instance path tracked by a Scope. Values are
// copied on every extension so that passing a Path down the call stack and
// letting it fall out of scope on the way back up is exactly "restore by
// structure" rather than by explicit undo.
type Path struct {
	segments []string
}

// RootPath returns the empty path, rendered as "/".
func RootPath() Path { return Path{} }

// Field returns a copy of p extended by a property-name segment, escaping
// '~' and '/' per RFC 6901 (~0, ~1).
func (p Path) Field(name string) Path {
	if name == "" {
		return p
	}
	esc := strings.NewReplacer("~", "~0", "/", "~1").Replace(name)
	return p.append(esc)
}

// Index returns a copy of p extended by an array-index segment.
func (p Path) Index(i int) Path {
	return p.append(strconv.Itoa(i))
}

// Segment returns a copy of p extended by a raw, already-escaped segment,
// used by the resolver when threading JSON-Pointer fragment tokens that
// were decoded independently (see the resolver package's fragment tokenizer).
func (p Path) Segment(seg string) Path {
	return p.append(seg)
}

func (p Path) append(seg string) Path {
	out := make([]string, len(p.segments)+1)
	copy(out, p.segments)
	out[len(p.segments)] = seg
	return Path{segments: out}
}

// Segments returns the path's segments, decoded (unescaped).
func (p Path) Segments() []string {
	out := make([]string, len(p.segments))
	for i, s := range p.segments {
		out[i] = strings.NewReplacer("~1", "/", "~0", "~").Replace(s)
	}
	return out
}

// String renders the path as a JSON Pointer; the root path renders as "/".
func (p Path) String() string {
	if len(p.segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.segments, "/")
}

// Issue builds an Issue at this path with the given code/message and
// optional key-value params (alternating key, value pairs collected into
// Params).
func (p Path) Issue(code, msg string, kv ...any) Issue {
	var params map[string]any
	if len(kv) > 0 {
		params = map[string]any{}
		for i := 0; i+1 < len(kv); i += 2 {
			params[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: p.String(), Code: code, Message: msg, Params: params}
}
