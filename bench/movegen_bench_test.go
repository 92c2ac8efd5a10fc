package bench

import (
	"testing"

	"chesscore/board"
	"chesscore/engine"
	"chesscore/movegen"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustFEN(b *testing.B, fen string) *board.Position {
	pos, err := movegen.FromFEN(fen)
	if err != nil {
		b.Fatalf("FromFEN: %v", err)
	}
	return pos
}

func BenchmarkLegalMoves_Initial(b *testing.B) {
	pos := mustFEN(b, movegen.FENStartPos)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = movegen.LegalMoves(pos)
	}
}

func BenchmarkApply_AllMoves_Kiwipete(b *testing.B) {
	pos := mustFEN(b, kiwipete)
	moves := movegen.LegalMoves(pos)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			if movegen.Apply(pos, m) == nil {
				b.Fatalf("illegal move in cached list: %v", m)
			}
		}
	}
}

func BenchmarkIterate_Kiwipete(b *testing.B) {
	pos := mustFEN(b, kiwipete)
	it := pos.Iter()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it.Reset()
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

func BenchmarkScore_Kiwipete(b *testing.B) {
	pos := mustFEN(b, kiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.ScorePosition(pos)
	}
}
