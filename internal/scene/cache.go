package scene

import (
	"sync"
)

// DocumentCache provides thread-safe caching of decoded documents to avoid
// re-reading and re-parsing an export on every request.
//
// Documents are keyed by the exact path string used to load them. Different
// paths to the same file (relative vs absolute) are cached separately.
//
// Cached documents remain in memory until Evict or Clear is called.
//
//	cache := scene.NewDocumentCache()
//	doc, err := cache.Load("/path/to/export.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cache.Evict("/path/to/export.json") // reload from disk next time
type DocumentCache struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentCache creates an empty cache.
func NewDocumentCache() *DocumentCache {
	return &DocumentCache{
		docs: make(map[string]*Document),
	}
}

// Load returns the cached document for path, decoding it from disk on first
// use.
func (c *DocumentCache) Load(path string) (*Document, error) {
	c.mu.RLock()
	if doc, ok := c.docs[path]; ok {
		c.mu.RUnlock()
		return doc, nil
	}
	c.mu.RUnlock()

	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.docs[path] = doc
	c.mu.Unlock()

	return doc, nil
}

// Evict removes path from the cache. Unknown paths are ignored.
func (c *DocumentCache) Evict(path string) {
	c.mu.Lock()
	delete(c.docs, path)
	c.mu.Unlock()
}

// Clear removes every cached document.
func (c *DocumentCache) Clear() {
	c.mu.Lock()
	c.docs = make(map[string]*Document)
	c.mu.Unlock()
}

// Len reports how many documents are cached.
func (c *DocumentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}
