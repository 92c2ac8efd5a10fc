package movegen

import (
	"errors"
	"fmt"
	"strings"

	"chesscore/board"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidFEN = errors.New("invalid FEN")

// FromFEN parses the placement, side to move, castling and en passant
// fields of a FEN string. Move clocks are accepted but not kept.
func FromFEN(fen string) (*board.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: not enough fields", ErrInvalidFEN)
	}

	var raw board.RawBoard
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: incorrect number of ranks", ErrInvalidFEN)
	}
	for i, rankStr := range ranks {
		row := 7 - i
		col := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			piece, ok := board.PieceFromRune(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFEN, ch)
			}
			if col >= 8 {
				return nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, row+1)
			}
			raw.Set(board.Pos{Row: uint8(row), Col: uint8(col)}, piece)
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("%w: rank %d does not have 8 columns", ErrInvalidFEN, row+1)
		}
	}

	var turn board.Color
	switch fields[1] {
	case "w":
		turn = board.White
	case "b":
		turn = board.Black
	default:
		return nil, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrInvalidFEN)
	}

	castling := board.CastleNone
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				castling |= board.CastleWhiteKing
			case 'Q':
				castling |= board.CastleWhiteQueen
			case 'k':
				castling |= board.CastleBlackKing
			case 'q':
				castling |= board.CastleBlackQueen
			default:
				return nil, fmt.Errorf("%w: invalid castling rights character %q", ErrInvalidFEN, ch)
			}
		}
	}

	castling = castlingOnBoard(&raw, castling)

	enPassant := board.NoSquare
	if fields[3] != "-" {
		sq, err := board.ParsePos(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant square: %w", ErrInvalidFEN, err)
		}
		enPassant = sq.Index()
	}

	return board.NewPosition(raw, turn, castling, enPassant), nil
}

var castleHomes = [...]struct {
	right      board.CastlingRights
	king, rook board.Pos
	color      board.Color
}{
	{board.CastleWhiteKing, board.Pos{Row: 0, Col: 4}, board.Pos{Row: 0, Col: 7}, board.White},
	{board.CastleWhiteQueen, board.Pos{Row: 0, Col: 4}, board.Pos{Row: 0, Col: 0}, board.White},
	{board.CastleBlackKing, board.Pos{Row: 7, Col: 4}, board.Pos{Row: 7, Col: 7}, board.Black},
	{board.CastleBlackQueen, board.Pos{Row: 7, Col: 4}, board.Pos{Row: 7, Col: 0}, board.Black},
}

// castlingOnBoard drops every right whose king or rook is not on its home square.
func castlingOnBoard(raw *board.RawBoard, rights board.CastlingRights) board.CastlingRights {
	for _, h := range castleHomes {
		if rights&h.right == 0 {
			continue
		}
		if raw.Get(h.king) != board.NewPiece(h.color, board.King) ||
			raw.Get(h.rook) != board.NewPiece(h.color, board.Rook) {
			rights &^= h.right
		}
	}
	return rights
}

// ToFEN writes pos as a FEN string with zeroed move clocks.
func ToFEN(pos *board.Position) string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		empty := 0
		for col := 0; col < 8; col++ {
			piece := pos.Get(board.Pos{Row: uint8(row), Col: uint8(col)})
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(piece.Rune())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if pos.Turn() == board.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	castling := pos.Castling()
	if castling == board.CastleNone {
		sb.WriteByte('-')
	}
	for _, c := range []struct {
		right  board.CastlingRights
		letter byte
	}{
		{board.CastleWhiteKing, 'K'},
		{board.CastleWhiteQueen, 'Q'},
		{board.CastleBlackKing, 'k'},
		{board.CastleBlackQueen, 'q'},
	} {
		if castling&c.right != 0 {
			sb.WriteByte(c.letter)
		}
	}

	if ep, ok := pos.EnPassant(); ok {
		sb.WriteByte(' ')
		sb.WriteString(ep.String())
	} else {
		sb.WriteString(" -")
	}
	sb.WriteString(" 0 1")
	return sb.String()
}
