package board

import "testing"

func allPieces() []Piece {
	pieces := make([]Piece, 0, 12)
	for _, color := range [...]Color{Black, White} {
		for _, kind := range Kinds {
			pieces = append(pieces, NewPiece(color, kind))
		}
	}
	return pieces
}

func TestSetGetRoundTrip(t *testing.T) {
	for _, piece := range allPieces() {
		for i := 0; i < Squares; i++ {
			var raw RawBoard
			pos := PosFromIndex(i)
			raw.Set(pos, piece)
			if got := raw.Get(pos); got != piece {
				t.Fatalf("square %v: expected %v, got %v", pos, piece, got)
			}
			raw.Set(pos, NoPiece)
			if got := raw.Get(pos); got != NoPiece {
				t.Fatalf("square %v: expected empty after clearing, got %v", pos, got)
			}
		}
	}
}

func TestSetLeavesNeighboursAlone(t *testing.T) {
	var raw RawBoard
	for i := 0; i < Squares; i++ {
		raw.Set(PosFromIndex(i), WhiteQueen)
	}
	raw.Set(Pos{Row: 3, Col: 4}, BlackKnight)
	for i := 0; i < Squares; i++ {
		pos := PosFromIndex(i)
		want := WhiteQueen
		if pos == (Pos{Row: 3, Col: 4}) {
			want = BlackKnight
		}
		if got := raw.Get(pos); got != want {
			t.Fatalf("square %v: expected %v, got %v", pos, want, got)
		}
	}
}

func TestDecodeIsTotal(t *testing.T) {
	for n := 0; n < 16; n++ {
		var raw RawBoard
		raw[0] = uint32(n)
		got := raw.Get(Pos{})
		switch {
		case n&7 == 0:
			if got != NoPiece {
				t.Errorf("nibble %04b: expected empty, got %v", n, got)
			}
		case n&7 == 7:
			if got.Kind() != King {
				t.Errorf("nibble %04b: expected king, got %v", n, got)
			}
		default:
			if got != Piece(n) {
				t.Errorf("nibble %04b: expected %v, got %v", n, Piece(n), got)
			}
		}
		if !got.IsEmpty() && (got.Color() == White) != (n&8 != 0) {
			t.Errorf("nibble %04b: wrong color %v", n, got.Color())
		}
	}
}

func TestMaskGenerator(t *testing.T) {
	masks := generateMasks()
	if masks[0] != 0b1111 {
		t.Fatalf("mask 0: %b", masks[0])
	}
	if masks[1] != 0b11110000 {
		t.Fatalf("mask 1: %b", masks[1])
	}
	if masks[3] != 0b1111000000000000 {
		t.Fatalf("mask 3: %b", masks[3])
	}
	if masks[7] != 0b11110000000000000000000000000000 {
		t.Fatalf("mask 7: %b", masks[7])
	}
}

func TestIteratorOrderAndCount(t *testing.T) {
	start := StartingPosition()
	it := start.Iter()
	if it.Len() != 64 {
		t.Fatalf("expected 64 remaining, got %d", it.Len())
	}
	count := 0
	for piece, ok := it.Next(); ok; piece, ok = it.Next() {
		if want := start.Get(PosFromIndex(count)); piece != want {
			t.Fatalf("index %d: expected %v, got %v", count, want, piece)
		}
		count++
		if it.Len() != 64-count {
			t.Fatalf("index %d: remaining %d", count, it.Len())
		}
	}
	if count != 64 {
		t.Fatalf("expected 64 squares, got %d", count)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("iterator produced a square after exhaustion")
	}
}

func TestIteratorKnownSquares(t *testing.T) {
	start := StartingPosition()
	a1, _ := ParsePos("a1")
	d8, _ := ParsePos("d8")

	it := start.Iter()
	first, _ := it.Next()
	if first != start.Get(a1) || first != WhiteRook {
		t.Fatalf("expected a1 white rook first, got %v", first)
	}

	it.Reset()
	var piece Piece
	for i := 0; i <= 8*7+3; i++ {
		piece, _ = it.Next()
	}
	if piece != start.Get(d8) || piece != BlackQueen {
		t.Fatalf("expected d8 black queen at index 59, got %v", piece)
	}
}

func TestIteratorDoesNotAllocate(t *testing.T) {
	start := StartingPosition()
	allocs := testing.AllocsPerRun(100, func() {
		it := start.Iter()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	})
	if allocs != 0 {
		t.Fatalf("expected no allocations, got %v", allocs)
	}
}
