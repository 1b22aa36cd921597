package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from document text
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "corpusclean:v1:" + hex.EncodeToString(hash[:])
}
