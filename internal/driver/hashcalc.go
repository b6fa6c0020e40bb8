package driver

import (
	"crypto/sha256"
	"encoding/binary"
)

// CacheKey derives the cache key of a file: H(schema || content hash).
// Bumping the schema version orphans every existing entry.
func CacheKey(content [32]byte) Digest {
	h := sha256.New()
	var schema [2]byte
	binary.BigEndian.PutUint16(schema[:], diskCacheSchemaVersion)
	_, _ = h.Write(schema[:])
	_, _ = h.Write(content[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
