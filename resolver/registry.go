package resolver

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"unicode"
)

// Opener opens a stream for a URI and returns its body. Callers must close
// the returned ReadCloser on every exit path.
type Opener func(ctx context.Context, uri string) (io.ReadCloser, error)

// Registry is the scheme-handler registry: a mapping from scheme
// name to URL-stream-opener, consulted by the resolver during a remote
// fetch. NewRegistry pre-registers the platform defaults (http/https via
// net/http, file via os.Open); Open fails with an error for a scheme that
// has no registered handler.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Opener
}

// NewRegistry returns a registry pre-populated with the default http(s) and
// file handlers.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]Opener)}
	httpOpener := func(ctx context.Context, uri string) (io.ReadCloser, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		return resp.Body, nil
	}
	r.handlers["http"] = httpOpener
	r.handlers["https"] = httpOpener
	r.handlers["file"] = func(ctx context.Context, uri string) (io.ReadCloser, error) {
		path := strings.TrimPrefix(uri, "file://")
		return os.Open(path)
	}
	return r
}

// Register installs or replaces the opener for scheme.
func (r *Registry) Register(scheme string, o Opener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[scheme] = o
}

// Open dispatches uri to the handler registered for its scheme.
func (r *Registry) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	scheme := ExtractScheme(uri)
	r.mu.RLock()
	o, ok := r.handlers[scheme]
	r.mu.RUnlock()
	if !ok {
		return nil, &unsupportedSchemeError{scheme: scheme, uri: uri}
	}
	return o(ctx, uri)
}

// ExtractScheme extracts the scheme from the front of a URI permissively:
// the segment before the first ':' with non-alphabetic characters
// stripped, lower-cased, rather than a strict RFC-3986 scheme check.
func ExtractScheme(uri string) string {
	idx := strings.IndexByte(uri, ':')
	if idx <= 0 {
		return ""
	}
	seg := uri[:idx]
	var b strings.Builder
	for _, r := range seg {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}

type unsupportedSchemeError struct {
	scheme string
	uri    string
}

func (e *unsupportedSchemeError) Error() string {
	return "resolver: no handler registered for scheme " + e.scheme + " (uri " + e.uri + ")"
}
