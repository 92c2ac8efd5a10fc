package board

// Kind is a colorless piece type. The numbering matches dragontoothmg so
// promotion pieces convert without a lookup.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists every real piece kind, pawn first.
var Kinds = [...]Kind{Pawn, Knight, Bishop, Rook, Queen, King}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is the packed 4-bit value stored for a square.
//
// The kind lives in the low three bits and bit 3 marks a white piece, so
// piece & 7 gives the kind and piece & 8 != 0 means White. NoPiece is the
// all-zero nibble.
type Piece uint8

const (
	kindMask Piece = 7
	whiteBit Piece = 8
)

const (
	NoPiece Piece = 0

	BlackPawn   = Piece(Pawn)
	BlackKnight = Piece(Knight)
	BlackBishop = Piece(Bishop)
	BlackRook   = Piece(Rook)
	BlackQueen  = Piece(Queen)
	BlackKing   = Piece(King)

	WhitePawn   = Piece(Pawn) | whiteBit
	WhiteKnight = Piece(Knight) | whiteBit
	WhiteBishop = Piece(Bishop) | whiteBit
	WhiteRook   = Piece(Rook) | whiteBit
	WhiteQueen  = Piece(Queen) | whiteBit
	WhiteKing   = Piece(King) | whiteBit
)

// NewPiece combines a color and a kind. NoKind always yields NoPiece.
func NewPiece(color Color, kind Kind) Piece {
	if kind == NoKind {
		return NoPiece
	}
	p := Piece(kind) & kindMask
	if color == White {
		p |= whiteBit
	}
	return p
}

// Kind returns the colorless type of the piece.
func (p Piece) Kind() Kind { return Kind(p & kindMask) }

// Color returns the owner of the piece. NoPiece reports Black.
func (p Piece) Color() Color {
	if p&whiteBit != 0 {
		return White
	}
	return Black
}

// IsEmpty reports whether the square holds nothing.
func (p Piece) IsEmpty() bool { return p&kindMask == 0 }

// Rune returns the FEN letter of the piece, '.' for an empty square.
func (p Piece) Rune() rune {
	var r rune
	switch p.Kind() {
	case Pawn:
		r = 'p'
	case Knight:
		r = 'n'
	case Bishop:
		r = 'b'
	case Rook:
		r = 'r'
	case Queen:
		r = 'q'
	case King:
		r = 'k'
	default:
		return '.'
	}
	if p.Color() == White {
		r -= 'a' - 'A'
	}
	return r
}

func (p Piece) String() string { return string(p.Rune()) }

// PieceFromRune converts a FEN letter to a piece.
func PieceFromRune(r rune) (Piece, bool) {
	color := Black
	if r >= 'A' && r <= 'Z' {
		color = White
		r += 'a' - 'A'
	}
	var kind Kind
	switch r {
	case 'p':
		kind = Pawn
	case 'n':
		kind = Knight
	case 'b':
		kind = Bishop
	case 'r':
		kind = Rook
	case 'q':
		kind = Queen
	case 'k':
		kind = King
	default:
		return NoPiece, false
	}
	return NewPiece(color, kind), true
}
