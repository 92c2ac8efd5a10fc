package board

// RawBoard packs the board into eight row words, one 4-bit piece slot per
// column. Column c of a row occupies bits 4c..4c+3.
type RawBoard [8]uint32

// nibbleMasks[i] selects the slot of column i within a row word.
var nibbleMasks [8]uint32

// decodeTable maps every possible nibble to a canonical piece. Kind values
// 6 and 7 both read as a king and a zero kind reads as empty whatever the
// color bit says, so decoding is total.
var decodeTable [16]Piece

// Set overwrites the slot at p. It does not check that the placement is legal.
func (b *RawBoard) Set(p Pos, piece Piece) {
	shift := uint(p.Col&7) << 2
	row := p.Row & 7
	b[row] = b[row]&^(0xF<<shift) | uint32(piece&0xF)<<shift
}

// Get decodes the slot at p.
func (b *RawBoard) Get(p Pos) Piece {
	return decodeTable[b[p.Row&7]>>(uint(p.Col&7)<<2)&0xF]
}

// Iter returns an iterator over all 64 squares in row-major order.
func (b *RawBoard) Iter() Iterator {
	return Iterator{board: b}
}

// Iterator walks a RawBoard square by square without allocating.
type Iterator struct {
	board *RawBoard
	idx   int
}

// Next returns the piece on the next square, or false once all 64 squares
// have been produced.
func (it *Iterator) Next() (Piece, bool) {
	if it.idx >= Squares {
		return NoPiece, false
	}
	col := it.idx & 7
	nibble := (it.board[it.idx>>3] & nibbleMasks[col]) >> (uint(col) << 2)
	it.idx++
	return decodeTable[nibble], true
}

// Len is the exact number of squares left.
func (it *Iterator) Len() int { return Squares - it.idx }

// Reset rewinds the iterator to a1.
func (it *Iterator) Reset() { it.idx = 0 }
