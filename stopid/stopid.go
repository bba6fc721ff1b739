// Package stopid maps GTFS stop IDs to integers.
package stopid

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

const hashMask = 1<<63 - 1

// Resolve returns the stop ID itself when it is a decimal number that fits in an int64,
// and otherwise a non-negative 63-bit hash of it.
//
// Hashed IDs can collide; callers that need unique IDs must check for collisions.
func Resolve(stopID string) int64 {
	if IsDigitsOnly(stopID) {
		if id, err := strconv.ParseInt(stopID, 10, 64); err == nil {
			return id
		}
	}
	return Hash(stopID)
}

// Hash is xxhash with its fixed zero seed, truncated to 63 bits. It is stable across runs and platforms.
func Hash(stopID string) int64 {
	return int64(xxhash.Sum64String(stopID) & hashMask)
}

// IsDigitsOnly reports whether s is non-empty and made of ASCII digits.
func IsDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
