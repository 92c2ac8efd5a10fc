package board

import (
	"errors"
	"fmt"
)

// Squares is the number of squares on the board.
const Squares = 64

// NoSquare marks a missing square index, e.g. no en passant target.
const NoSquare = -1

var ErrInvalidSquare = errors.New("invalid square")

// Pos addresses a square by zero-based row (rank) and column (file).
// Row 0 column 0 is a1.
type Pos struct {
	Row uint8
	Col uint8
}

// NewPos returns the square at row, col or false when it is off the board.
func NewPos(row, col int) (Pos, bool) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return Pos{}, false
	}
	return Pos{Row: uint8(row), Col: uint8(col)}, true
}

// PosFromIndex converts a row-major square index (a1 = 0, h8 = 63).
func PosFromIndex(i int) Pos {
	return Pos{Row: uint8(i>>3) & 7, Col: uint8(i) & 7}
}

// Index returns the row-major square index.
func (p Pos) Index() int { return int(p.Row)<<3 | int(p.Col) }

func (p Pos) String() string {
	return string([]byte{'a' + p.Col, '1' + p.Row})
}

// ParsePos reads an algebraic square such as "e2".
func ParsePos(s string) (Pos, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Pos{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Pos{Row: s[1] - '1', Col: s[0] - 'a'}, nil
}

// Offset is a relative step on the board.
type Offset struct {
	Rows int8
	Cols int8
}

// Add applies the offset and reports whether the result is still on the board.
func (p Pos) Add(o Offset) (Pos, bool) {
	return NewPos(int(p.Row)+int(o.Rows), int(p.Col)+int(o.Cols))
}
