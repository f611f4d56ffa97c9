package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 10000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForChunks_CoversRange(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
	n := 1000

	seen := make([]bool, n)
	ForChunks(n, func(start, end int) {
		for i := start; i < end; i++ {
			seen[i] = true
		}
	}, cfg)

	for i, ok := range seen {
		if !ok {
			t.Fatalf("index %d not covered", i)
		}
	}
}

func TestForChunks_DisjointRanges(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 1}
	n := 997 // Not a multiple of the worker count.

	counts := make([]int64, n)
	ForChunks(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt64(&counts[i], 1)
		}
	}, cfg)

	for i, c := range counts {
		if c != 1 {
			t.Fatalf("index %d written %d times", i, c)
		}
	}
}

func TestForChunks_Empty(t *testing.T) {
	cfg := DefaultConfig()
	called := false
	ForChunks(0, func(_, _ int) {
		called = true
	}, cfg)
	if called {
		t.Error("ForChunks(0) should not invoke the body")
	}
}

func BenchmarkForChunks(b *testing.B) {
	cfg := DefaultConfig()
	n := 1 << 20
	out := make([]uint64, n)

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForChunks(n, func(start, end int) {
				for j := start; j < end; j++ {
					out[j] = uint64(j) * 0x9e3779b97f4a7c15
				}
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			ForChunks(n, func(start, end int) {
				for j := start; j < end; j++ {
					out[j] = uint64(j) * 0x9e3779b97f4a7c15
				}
			}, cfgSeq)
		}
	})
}
