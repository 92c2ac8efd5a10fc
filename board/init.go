package board

func init() {
	nibbleMasks = generateMasks()
	decodeTable = generateDecodeTable()
}

func generateMasks() [8]uint32 {
	var masks [8]uint32
	for i := range masks {
		masks[i] = 0xF << (uint(i) << 2)
	}
	return masks
}

func generateDecodeTable() [16]Piece {
	var table [16]Piece
	for n := range table {
		kind := Kind(n) & Kind(kindMask)
		if kind == NoKind {
			table[n] = NoPiece
			continue
		}
		if kind > King {
			kind = King
		}
		table[n] = Piece(kind) | Piece(n)&whiteBit
	}
	return table
}
