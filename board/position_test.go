package board

import (
	"errors"
	"strings"
	"testing"
)

func TestStartingPositionLayout(t *testing.T) {
	p := StartingPosition()
	checks := map[string]Piece{
		"a1": WhiteRook, "e1": WhiteKing, "d1": WhiteQueen, "c1": WhiteBishop,
		"e2": WhitePawn, "h7": BlackPawn, "a8": BlackRook, "e8": BlackKing,
		"e4": NoPiece, "d5": NoPiece,
	}
	for sq, want := range checks {
		pos, err := ParsePos(sq)
		if err != nil {
			t.Fatalf("ParsePos(%s): %v", sq, err)
		}
		if got := p.Get(pos); got != want {
			t.Errorf("%s: expected %v, got %v", sq, want, got)
		}
	}
	if p.Turn() != White {
		t.Errorf("expected white to move")
	}
	if p.Castling() != CastleAll {
		t.Errorf("expected all castling rights, got %04b", p.Castling())
	}
	if _, ok := p.EnPassant(); ok {
		t.Errorf("unexpected en passant square")
	}
}

func TestPositionEqualAndString(t *testing.T) {
	a, b := StartingPosition(), StartingPosition()
	if !a.Equal(b) {
		t.Fatalf("two starting positions should be equal")
	}
	raw := a.Raw()
	raw.Set(Pos{Row: 1, Col: 4}, NoPiece)
	c := NewPosition(raw, White, CastleAll, NoSquare)
	if a.Equal(c) {
		t.Fatalf("positions differ on e2")
	}
	if a.Get(Pos{Row: 1, Col: 4}) != WhitePawn {
		t.Fatalf("Raw must return a copy")
	}
	if !strings.HasPrefix(a.String(), "8 rnbqkbnr\n") {
		t.Fatalf("unexpected diagram:\n%s", a)
	}
}

func TestParsePos(t *testing.T) {
	p, err := ParsePos("e2")
	if err != nil || p != (Pos{Row: 1, Col: 4}) {
		t.Fatalf("ParsePos(e2) = %v, %v", p, err)
	}
	if p.String() != "e2" || p.Index() != 12 || PosFromIndex(12) != p {
		t.Fatalf("e2 conversions disagree: %s %d", p, p.Index())
	}
	for _, bad := range []string{"", "e", "i1", "a9", "e22"} {
		if _, err := ParsePos(bad); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParsePos(%q): expected ErrInvalidSquare, got %v", bad, err)
		}
	}
}

func TestPosAdd(t *testing.T) {
	h2 := Pos{Row: 1, Col: 7}
	if _, ok := h2.Add(Offset{Rows: 1, Cols: 1}); ok {
		t.Fatalf("h2 + (1,1) is off the board")
	}
	g3, ok := h2.Add(Offset{Rows: 1, Cols: -1})
	if !ok || g3.String() != "g3" {
		t.Fatalf("expected g3, got %v", g3)
	}
}

func TestColorTables(t *testing.T) {
	if White.PromotionRow() != 7 || Black.PromotionRow() != 0 {
		t.Fatalf("promotion rows wrong")
	}
	if White.PieceRow() != 0 || Black.PieceRow() != 7 {
		t.Fatalf("piece rows wrong")
	}
	if got := White.PawnSingleStep(); len(got) != 1 || got[0] != (Offset{1, 0}) {
		t.Fatalf("white single step: %v", got)
	}
	if got := Black.PawnDoubleStep(); len(got) != 2 || got[1] != (Offset{-2, 0}) {
		t.Fatalf("black double step: %v", got)
	}
	if got := Black.PawnTakesStep(); len(got) != 2 || got[0] != (Offset{-1, 1}) {
		t.Fatalf("black takes: %v", got)
	}
	if &White.PawnTakesStep()[0] != &White.PawnTakesStep()[0] {
		t.Fatalf("tables must be built once")
	}
	if White.Other() != Black || Black.Other() != White {
		t.Fatalf("Other is not an involution")
	}
}

func TestPieceRunes(t *testing.T) {
	for _, piece := range allPieces() {
		back, ok := PieceFromRune(piece.Rune())
		if !ok || back != piece {
			t.Fatalf("%v did not survive its FEN letter", piece)
		}
	}
	if _, ok := PieceFromRune('x'); ok {
		t.Fatalf("x is not a piece")
	}
	if NoPiece.Rune() != '.' {
		t.Fatalf("empty square renders as %q", NoPiece.Rune())
	}
}

func TestPossibleMoveString(t *testing.T) {
	e7, _ := ParsePos("e7")
	e8, _ := ParsePos("e8")
	if s := (PossibleMove{From: e7, To: e8, Promotion: Queen}).String(); s != "e7e8q" {
		t.Fatalf("expected e7e8q, got %s", s)
	}
	if s := (PossibleMove{From: e7, To: e8}).String(); s != "e7e8" {
		t.Fatalf("expected e7e8, got %s", s)
	}
}
