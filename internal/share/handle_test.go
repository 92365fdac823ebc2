package share

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/txbm/blog-posts/internal/config"
)

func TestShareStartsAtOneReference(t *testing.T) {
	h := Share("payload")

	require.Equal(t, int32(1), h.Refs())
	require.Equal(t, "payload", *h.Value())
}

func TestRetainAliasesOneAllocation(t *testing.T) {
	h := Share("payload")
	h2 := h.Retain()

	require.Equal(t, int32(2), h.Refs())
	require.Equal(t, int32(2), h2.Refs())

	// Both handles point at the same memory; Retain never deep-copies.
	require.Same(t, h.Value(), h2.Value())
}

func TestReleaseFreesOnLastHolder(t *testing.T) {
	h := Share("payload")
	h2 := h.Retain()

	h.Release()
	require.Equal(t, "payload", *h2.Value())

	h2.Release()
	require.Panics(t, func() { _ = h2.Value() })
	require.Panics(t, func() { _ = h2.Retain() })
}

func TestConcurrentRetainRelease(t *testing.T) {
	h := Share("payload")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dup := h.Retain()
			_ = *dup.Value()
			dup.Release()
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), h.Refs())
	require.Equal(t, "payload", *h.Value())
}

func TestSpawnWorkers(t *testing.T) {
	cfg := config.Config{
		Path:     "/etc/nginx/nginx.conf",
		Reserved: make([]string, 0, config.ReserveCapacity),
	}

	h := Share(cfg)
	workers := SpawnWorkers(h, 100)

	require.Len(t, workers, 100)
	require.Equal(t, int32(101), h.Refs())

	// Every worker reads the one allocation: identical pointers, identical
	// capacity metadata, pairwise structural equality.
	require.Same(t, workers[0].Config.Value(), workers[1].Config.Value())
	require.Equal(t,
		cap(workers[0].Config.Value().Reserved),
		cap(workers[1].Config.Value().Reserved))
	require.True(t, config.Equal(workers[0].Config.Value(), workers[1].Config.Value()))
}

func TestSpawnWorkersAssignsDistinctIDs(t *testing.T) {
	h := Share(config.Config{Path: "/etc/nginx/nginx.conf"})
	workers := SpawnWorkers(h, 10)

	seen := make(map[string]bool, len(workers))
	for _, w := range workers {
		if w.ID == "" {
			t.Fatal("worker has empty ID")
		}
		if seen[w.ID] {
			t.Fatalf("duplicate worker ID %s", w.ID)
		}
		seen[w.ID] = true
	}
}
