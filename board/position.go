package board

import "strings"

// CastlingRights is a bit set of the castles still available.
type CastlingRights uint8

const (
	CastleWhiteKing CastlingRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen

	CastleNone CastlingRights = 0
	CastleAll                 = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

// Position is an immutable board snapshot. Continuation nodes share
// positions by pointer, so nothing may change a Position once it has been
// built; producing a new position always means building a new value.
type Position struct {
	raw       RawBoard
	turn      Color
	castling  CastlingRights
	enPassant int8
}

// NewPosition builds a snapshot from a packed board. enPassant is a square
// index or NoSquare.
func NewPosition(raw RawBoard, turn Color, castling CastlingRights, enPassant int) *Position {
	if enPassant < 0 || enPassant >= Squares {
		enPassant = NoSquare
	}
	return &Position{
		raw:       raw,
		turn:      turn,
		castling:  castling & CastleAll,
		enPassant: int8(enPassant),
	}
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingPosition returns the standard initial position, White to move.
func StartingPosition() *Position {
	var raw RawBoard
	for _, color := range [...]Color{White, Black} {
		row := color.PieceRow()
		for col, kind := range backRank {
			raw.Set(Pos{Row: row, Col: uint8(col)}, NewPiece(color, kind))
			pawn, _ := Pos{Row: row, Col: uint8(col)}.Add(color.PawnSingleStep()[0])
			raw.Set(pawn, NewPiece(color, Pawn))
		}
	}
	return NewPosition(raw, White, CastleAll, NoSquare)
}

// Raw returns a copy of the packed board.
func (p *Position) Raw() RawBoard { return p.raw }

// Get returns the piece on a square.
func (p *Position) Get(pos Pos) Piece { return p.raw.Get(pos) }

// Iter iterates the squares of the position in row-major order.
func (p *Position) Iter() Iterator { return p.raw.Iter() }

// Turn is the side to move.
func (p *Position) Turn() Color { return p.turn }

func (p *Position) Castling() CastlingRights { return p.castling }

// EnPassant returns the en passant target square, if any.
func (p *Position) EnPassant() (Pos, bool) {
	if p.enPassant == NoSquare {
		return Pos{}, false
	}
	return PosFromIndex(int(p.enPassant)), true
}

// EnPassantIndex returns the en passant square index or NoSquare.
func (p *Position) EnPassantIndex() int { return int(p.enPassant) }

// Equal reports whether two snapshots describe the same position.
func (p *Position) Equal(o *Position) bool {
	if p == o {
		return true
	}
	if p == nil || o == nil {
		return false
	}
	return *p == *o
}

// String draws the board with rank 8 on top, for diagnostics.
func (p *Position) String() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		sb.WriteByte(byte('1' + row))
		sb.WriteByte(' ')
		for col := 0; col < 8; col++ {
			sb.WriteRune(p.raw.Get(Pos{Row: uint8(row), Col: uint8(col)}).Rune())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	sb.WriteString(p.turn.String())
	sb.WriteString(" to move\n")
	return sb.String()
}
