package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Cache stores translated formulas keyed by relation
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, formula string)
	Len() int
}

// Key generates a cache key for a relation rendered with or without quantifiers
func Key(quantifiers bool, relation string) string {
	hash := sha256.Sum256([]byte(relation))
	mode := "q0"
	if quantifiers {
		mode = "q1"
	}
	return "atomlogic:v1:" + mode + ":" + hex.EncodeToString(hash[:])
}
