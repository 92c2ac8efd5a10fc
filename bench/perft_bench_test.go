package bench

import (
	"fmt"
	"testing"

	"chesscore/engine"
	"chesscore/movegen"
	"chesscore/search"
)

var perftPositions = []struct {
	name  string
	fen   string
	depth int
}{
	{"Initial", movegen.FENStartPos, 3},
	{"Kiwipete", kiwipete, 2},
}

// BenchmarkPerft compares counting through dragontoothmg alone with
// counting while a continuation tree is built and with walking a tree
// that is already complete.
func BenchmarkPerft(b *testing.B) {
	for _, p := range perftPositions {
		pos := mustFEN(b, p.fen)
		name := fmt.Sprintf("%s/D%d", p.name, p.depth)

		b.Run(name+"/movegen", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = movegen.Perft(pos, p.depth)
			}
		})
		b.Run(name+"/build", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = search.Expand(engine.NewContinuation(pos), p.depth)
			}
		})
		b.Run(name+"/cached", func(b *testing.B) {
			root := engine.NewContinuation(pos)
			search.Expand(root, p.depth)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = search.Expand(root, p.depth)
			}
		})
	}
}
