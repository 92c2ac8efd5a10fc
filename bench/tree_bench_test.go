package bench

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"chesscore/engine"
	"chesscore/search"
)

func exploredTree(b *testing.B, depth int) *engine.Continuation {
	root := engine.NewStartingContinuation()
	if _, err := search.NewExplorer(depth, zerolog.Nop()).Explore(context.Background(), root); err != nil {
		b.Fatalf("Explore: %v", err)
	}
	return root
}

func BenchmarkExplore_Initial_D3(b *testing.B) {
	explorer := search.NewExplorer(3, zerolog.Nop())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := explorer.Explore(context.Background(), engine.NewStartingContinuation()); err != nil {
			b.Fatal(err)
		}
	}
}

// Merge empties its argument, so every round needs two fresh trees.
func BenchmarkMerge_D2(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		root, other := exploredTree(b, 2), exploredTree(b, 2)
		b.StartTimer()
		root.Merge(other)
	}
}

func BenchmarkTotalSize_D3(b *testing.B) {
	root := exploredTree(b, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = root.TotalSize()
	}
}
