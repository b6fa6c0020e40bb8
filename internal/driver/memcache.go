package driver

import (
	"sync"

	"shaderlex/internal/source"
)

// per-process cache by file path + content hash
type memEntry struct {
	content [32]byte
	payload *DiskPayload
}

// MemCache keeps the last token stream of every path in memory. Watch mode
// uses it to skip files whose content did not change between runs.
type MemCache struct {
	mu     sync.RWMutex
	byPath map[string]memEntry
}

// NewMemCache creates a MemCache with the given capacity hint.
func NewMemCache(capHint int) *MemCache {
	return &MemCache{byPath: make(map[string]memEntry, capHint)}
}

// Get returns the payload stored for file if its content hash still matches.
func (c *MemCache) Get(file *source.File) (*DiskPayload, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	rec, ok := c.byPath[file.Path]
	c.mu.RUnlock()
	if !ok || rec.content != file.Hash {
		return nil, false
	}
	return rec.payload, true
}

// Put stores payload under its path, replacing older content.
func (c *MemCache) Put(payload *DiskPayload) {
	if c == nil || payload == nil {
		return
	}
	c.mu.Lock()
	c.byPath[payload.Path] = memEntry{content: payload.ContentHash, payload: payload}
	c.mu.Unlock()
}

// Len returns the number of cached paths.
func (c *MemCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byPath)
}
