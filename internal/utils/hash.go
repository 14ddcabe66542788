package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
	"sync/atomic"
)

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool atomic.Pointer[sync.Pool]

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers keyed with
// hashKey. The pool backs [Hash], which verifies change pushes received from
// peers. Call it once at startup.
//
//	utils.InitHasherPool("my-secret-key")
func InitHasherPool(hashKey string) {
	key := []byte(hashKey)
	hasherPool.Store(&sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, key)
		},
	})
}

// Hash computes an HMAC-SHA256 signature over data using a hasher pulled
// from the global pool.
func Hash(data []byte) []byte {
	pool := hasherPool.Load()
	h := pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	pool.Put(h)

	return sum
}

// HashHex is Hash encoded as a lowercase hex string.
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// HashString computes an HMAC-SHA256 signature over data with hashKey and
// returns it hex-encoded. Unlike Hash it does not touch the global pool.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// EqualHex compares two hex signatures in constant time.
func EqualHex(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
