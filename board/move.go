package board

// PossibleMove is a fully formed move as produced by move generation.
// It is a comparable value; two moves are the same move iff they are ==.
type PossibleMove struct {
	From      Pos
	To        Pos
	Promotion Kind
}

// String produces the UCI form of the move (e.g. "e2e4", "e7e8q").
func (m PossibleMove) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(NewPiece(Black, m.Promotion).Rune())
	}
	return s
}
