package engine

import (
	"chesscore/board"
)

// Mate is the score of a position where Black's king is gone. A missing
// White king scores -Mate.
const Mate float32 = 1000

// Scores within mateWindow of ±Mate are mate scores; search nudges the
// sentinel by a little for every ply it is propagated.
const mateWindow float32 = 50

// Material values in tenths of a pawn. Summing integers keeps balanced
// material at exactly zero whatever order the squares are visited in.
var materialTenths = [7]int32{
	board.Pawn:   10,
	board.Knight: 30,
	board.Bishop: 31,
	board.Rook:   50,
	board.Queen:  90,
	board.King:   0,
}

// Score returns the material balance of raw from White's point of view.
//
// Without a White king the result is -Mate, even if Black's king is also
// missing. With a White king but no Black king it is Mate.
func Score(raw *board.RawBoard) float32 {
	var tenths int32
	whiteKing, blackKing := false, false

	it := raw.Iter()
	for piece, ok := it.Next(); ok; piece, ok = it.Next() {
		if piece.IsEmpty() {
			continue
		}
		kind := piece.Kind()
		if piece.Color() == board.White {
			tenths += materialTenths[kind]
			whiteKing = whiteKing || kind == board.King
		} else {
			tenths -= materialTenths[kind]
			blackKing = blackKing || kind == board.King
		}
	}

	if !whiteKing {
		return -Mate
	}
	if !blackKing {
		return Mate
	}
	return float32(tenths) / 10
}

// ScorePosition scores the board of a position snapshot.
func ScorePosition(p *board.Position) float32 {
	raw := p.Raw()
	return Score(&raw)
}

// IsMate reports whether score is effectively one of the mate sentinels.
func IsMate(score float32) bool {
	return absf(absf(score)-Mate) < mateWindow
}
