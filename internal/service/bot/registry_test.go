package bot

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegistryCapacity = 128

func TestSelectionRegistry_InsertAndTake(t *testing.T) {
	t.Parallel()

	registry := NewSelectionRegistry(testRegistryCapacity, time.Minute)

	registry.Insert(1, "dl:token-a", "video-a")
	registry.Insert(1, "dl:token-b", "video-b")
	require.Equal(t, 2, registry.Len())

	videoID, ok := registry.Take("dl:token-a")
	require.True(t, ok)
	assert.Equal(t, "video-a", videoID)
	assert.Equal(t, 1, registry.Len())
}

// TestSelectionRegistry_TakeConsumes tests that a token resolves exactly once.
func TestSelectionRegistry_TakeConsumes(t *testing.T) {
	t.Parallel()

	registry := NewSelectionRegistry(testRegistryCapacity, time.Minute)
	registry.Insert(1, "dl:token-a", "video-a")

	_, ok := registry.Take("dl:token-a")
	require.True(t, ok)

	_, ok = registry.Take("dl:token-a")
	assert.False(t, ok, "Second take of the same token should miss")
}

func TestSelectionRegistry_TakeUnknownToken(t *testing.T) {
	t.Parallel()

	registry := NewSelectionRegistry(testRegistryCapacity, time.Minute)

	_, ok := registry.Take("dl:never-issued")
	assert.False(t, ok)
}

func TestSelectionRegistry_DropUser(t *testing.T) {
	t.Parallel()

	registry := NewSelectionRegistry(testRegistryCapacity, time.Minute)

	registry.Insert(1, "dl:token-a", "video-a")
	registry.Insert(1, "dl:token-b", "video-b")
	registry.Insert(2, "dl:token-c", "video-c")

	registry.DropUser(1)

	_, ok := registry.Take("dl:token-a")
	assert.False(t, ok, "Dropped user's tokens should be gone")

	_, ok = registry.Take("dl:token-b")
	assert.False(t, ok, "Dropped user's tokens should be gone")

	videoID, ok := registry.Take("dl:token-c")
	require.True(t, ok, "Other users' tokens should survive")
	assert.Equal(t, "video-c", videoID)
}

func TestSelectionRegistry_DropUnknownUser(t *testing.T) {
	t.Parallel()

	registry := NewSelectionRegistry(testRegistryCapacity, time.Minute)
	registry.Insert(1, "dl:token-a", "video-a")

	registry.DropUser(42)

	assert.Equal(t, 1, registry.Len())
}

// TestSelectionRegistry_TTLExpiry tests that abandoned tokens are reclaimed
// after the idle window.
func TestSelectionRegistry_TTLExpiry(t *testing.T) {
	t.Parallel()

	registry := NewSelectionRegistry(testRegistryCapacity, 50*time.Millisecond)
	registry.Insert(1, "dl:token-a", "video-a")

	assert.Eventually(t, func() bool {
		_, ok := registry.Take("dl:token-a")
		return !ok
	}, 2*time.Second, 25*time.Millisecond, "Token should expire after the TTL")
}

// TestSelectionRegistry_ConcurrentTake tests that under contention exactly one
// caller wins a token.
func TestSelectionRegistry_ConcurrentTake(t *testing.T) {
	t.Parallel()

	const goroutines = 32

	registry := NewSelectionRegistry(testRegistryCapacity, time.Minute)
	registry.Insert(1, "dl:token-a", "video-a")

	var (
		wins      atomic.Int64
		waitGroup sync.WaitGroup
	)

	waitGroup.Add(goroutines)

	for range goroutines {
		go func() {
			defer waitGroup.Done()

			if _, ok := registry.Take("dl:token-a"); ok {
				wins.Add(1)
			}
		}()
	}

	waitGroup.Wait()

	assert.Equal(t, int64(1), wins.Load(), "Exactly one concurrent take should win")
}

// TestSelectionRegistry_CapacityEviction tests that the registry stays bounded
// and the per-user index follows evictions.
func TestSelectionRegistry_CapacityEviction(t *testing.T) {
	t.Parallel()

	const capacity = 4

	registry := NewSelectionRegistry(capacity, time.Minute)

	for i := range capacity * 2 {
		registry.Insert(1, fmt.Sprintf("dl:token-%d", i), fmt.Sprintf("video-%d", i))
	}

	assert.LessOrEqual(t, registry.Len(), capacity)

	// The oldest tokens were evicted and must not resolve.
	_, ok := registry.Take("dl:token-0")
	assert.False(t, ok)
}
