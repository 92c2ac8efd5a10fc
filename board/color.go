package board

import "sync"

type Color uint8

const (
	Black Color = iota
	White
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type colorTables struct {
	singleStep   [2][]Offset
	doubleStep   [2][]Offset
	takesStep    [2][]Offset
	promotionRow [2]uint8
	pieceRow     [2]uint8
}

// pawnTables is built on first use and never written afterwards.
var pawnTables = sync.OnceValue(func() *colorTables {
	return &colorTables{
		singleStep: [2][]Offset{
			Black: {{-1, 0}},
			White: {{1, 0}},
		},
		doubleStep: [2][]Offset{
			Black: {{-1, 0}, {-2, 0}},
			White: {{1, 0}, {2, 0}},
		},
		takesStep: [2][]Offset{
			Black: {{-1, 1}, {-1, -1}},
			White: {{1, 1}, {1, -1}},
		},
		promotionRow: [2]uint8{Black: 0, White: 7},
		pieceRow:     [2]uint8{Black: 7, White: 0},
	}
})

// PawnSingleStep returns the forward step of a pawn that has already moved.
// The returned slice is shared and must not be modified.
func (c Color) PawnSingleStep() []Offset { return pawnTables().singleStep[c] }

// PawnDoubleStep returns the steps available to a pawn on its first move.
func (c Color) PawnDoubleStep() []Offset { return pawnTables().doubleStep[c] }

// PawnTakesStep returns the diagonal capture steps of a pawn.
func (c Color) PawnTakesStep() []Offset { return pawnTables().takesStep[c] }

// PromotionRow is the row on which this side's pawns promote.
func (c Color) PromotionRow() uint8 { return pawnTables().promotionRow[c] }

// PieceRow is the row holding this side's pieces in the starting position.
func (c Color) PieceRow() uint8 { return pawnTables().pieceRow[c] }
