package resolver

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/hollowpine/schemacore/node"
)

// Cache is the document cache: an absolute-URI to parsed schema-document
// mapping, last-writer-wins, no eviction. Guarded by a mutex and backed by
// a singleflight group so concurrent validate calls sharing one Resolver
// never fetch the same URI twice, and in-flight fetches for the same URI
// are deduplicated.
type Cache struct {
	mu   sync.RWMutex
	docs map[string]*node.Node
	sf   singleflight.Group
}

// NewCache returns an empty document cache.
func NewCache() *Cache {
	return &Cache{docs: make(map[string]*node.Node)}
}

// Get is a pure lookup.
func (c *Cache) Get(uri string) (*node.Node, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.docs[uri]
	return n, ok
}

// Put is a last-writer-wins insert.
func (c *Cache) Put(uri string, n *node.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[uri] = n
}

// GetOrFetch returns the cached document for uri, or calls fetch exactly
// once per concurrently-requested uri and caches the result. Reads for the
// same uri within one validate call always observe the same *node.Node
// (pointer identity), which the resolver relies on for cycle checks.
func (c *Cache) GetOrFetch(uri string, fetch func() (*node.Node, error)) (*node.Node, error) {
	if n, ok := c.Get(uri); ok {
		return n, nil
	}
	v, err, _ := c.sf.Do(uri, func() (any, error) {
		if n, ok := c.Get(uri); ok {
			return n, nil
		}
		n, err := fetch()
		if err != nil {
			return nil, err
		}
		c.Put(uri, n)
		return n, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*node.Node), nil
}
