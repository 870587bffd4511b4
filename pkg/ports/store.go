package ports

import (
	"context"
	"strconv"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/cespare/xxhash/v2"
)

// ResultCache stores results of runs that halted on their own.
// Runs are deterministic, so a result is valid for as long as the definition is unchanged.
type ResultCache interface {
	// Get returns the cached result for key.
	// Returns domain.ErrCacheMiss if there is no entry.
	Get(ctx context.Context, key string) (domain.Result, error)

	// Put stores res under key.
	Put(ctx context.Context, key string, res domain.Result) error
}

// Fingerprint hashes the canonical form of a definition.
func Fingerprint(def *domain.Definition) string {
	return strconv.FormatUint(xxhash.Sum64String(def.Canonical()), 16)
}

// CacheKey derives the cache key of (definition, mode, input) from a precomputed fingerprint.
func CacheKey(fingerprint string, mode domain.Mode, input string) string {
	h := xxhash.New()
	_, _ = h.WriteString(fingerprint)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(string(mode))
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(input)
	return fingerprint + ":" + strconv.FormatUint(h.Sum64(), 16)
}
