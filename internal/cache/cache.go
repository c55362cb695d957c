package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores downloaded source files so repeated pipeline runs skip
// re-fetching multi-megabyte CSVs.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from a source URL
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "whichmore:v1:" + hex.EncodeToString(sum[:])
}
