package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache implementation
// adheres to the defined interface contract.
func RunResultCacheContract(t *testing.T, cache ResultCache) {
	ctx := context.Background()
	prefix := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Put and Get", func(t *testing.T) {
		key := CacheKey(prefix, domain.ModeTransducer, "ab")
		res := domain.Result{Input: "ab", Output: "ba", Steps: 7, Halt: domain.HaltFinalState}

		require.NoError(t, cache.Put(ctx, key, res), "Put should not return error")

		got, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, res, got)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, CacheKey(prefix, domain.ModeRecognizer, "missing"))
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := CacheKey(prefix, domain.ModeRecognizer, "0")
		require.NoError(t, cache.Put(ctx, key, domain.Result{Input: "0", Output: "reject", Halt: domain.HaltNoTransition}))
		require.NoError(t, cache.Put(ctx, key, domain.Result{Input: "0", Output: "accept", Steps: 1, Halt: domain.HaltNoTransition}))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "accept", got.Output)
		assert.Equal(t, 1, got.Steps)
	})

	t.Run("Empty Output", func(t *testing.T) {
		key := CacheKey(prefix, domain.ModeTransducer, "")
		require.NoError(t, cache.Put(ctx, key, domain.Result{Halt: domain.HaltNoTransition}))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "", got.Output)
		assert.Equal(t, domain.HaltNoTransition, got.Halt)
	})
}
