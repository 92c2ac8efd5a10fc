package movegen

import (
	"errors"
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"chesscore/board"
)

var ErrInvalidMove = errors.New("invalid move")

// hasBothKings guards dragontoothmg, which expects one king per side.
func hasBothKings(pos *board.Position) bool {
	white, black := false, false
	it := pos.Iter()
	for piece, ok := it.Next(); ok; piece, ok = it.Next() {
		if piece.Kind() != board.King {
			continue
		}
		if piece.Color() == board.White {
			white = true
		} else {
			black = true
		}
	}
	return white && black
}

func toDragon(pos *board.Position) dragontoothmg.Board {
	return dragontoothmg.ParseFen(ToFEN(pos))
}

func fromDragonMove(m dragontoothmg.Move) board.PossibleMove {
	return board.PossibleMove{
		From:      board.PosFromIndex(int(m.From())),
		To:        board.PosFromIndex(int(m.To())),
		Promotion: board.Kind(m.Promote()),
	}
}

// LegalMoves lists the legal moves of the side to move. A position missing
// a king has none.
func LegalMoves(pos *board.Position) []board.PossibleMove {
	if !hasBothKings(pos) {
		return nil
	}
	b := toDragon(pos)
	moves := b.GenerateLegalMoves()
	out := make([]board.PossibleMove, len(moves))
	for i, m := range moves {
		out[i] = fromDragonMove(m)
	}
	return out
}

// InCheck reports whether the side to move is in check.
func InCheck(pos *board.Position) bool {
	if !hasBothKings(pos) {
		return false
	}
	b := toDragon(pos)
	return b.OurKingInCheck()
}

// Apply plays move on pos and returns the resulting position, or nil if the
// move is not legal there. pos itself is left untouched.
func Apply(pos *board.Position, move board.PossibleMove) *board.Position {
	if !hasBothKings(pos) {
		return nil
	}
	b := toDragon(pos)
	moves := b.GenerateLegalMoves()
	i := slices.IndexFunc(moves, func(m dragontoothmg.Move) bool {
		return fromDragonMove(m) == move
	})
	if i < 0 {
		return nil
	}
	b.Apply(moves[i])
	next, err := FromFEN(b.ToFen())
	if err != nil {
		return nil
	}
	return next
}

// ParseMove reads a move in UCI notation such as "e2e4" or "e7e8q".
func ParseMove(s string) (board.PossibleMove, error) {
	m, err := dragontoothmg.ParseMove(s)
	if err != nil {
		return board.PossibleMove{}, fmt.Errorf("%w %q: %v", ErrInvalidMove, s, err)
	}
	return fromDragonMove(m), nil
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(pos *board.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	if !hasBothKings(pos) {
		return 0
	}
	b := toDragon(pos)
	return perft(&b, depth)
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(pos *board.Position, depth int) map[board.PossibleMove]uint64 {
	out := make(map[board.PossibleMove]uint64)
	if depth <= 0 || !hasBothKings(pos) {
		return out
	}
	b := toDragon(pos)
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		out[fromDragonMove(m)] = perft(&b, depth-1)
		unapply()
	}
	return out
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += perft(b, depth-1)
		unapply()
	}
	return nodes
}
