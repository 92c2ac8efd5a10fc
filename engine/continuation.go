package engine

import (
	"strings"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"chesscore/board"
)

// SimilarScoreEpsilon is the largest score gap at which two continuations
// still count as equally good.
const SimilarScoreEpsilon float32 = 0.05

// PositionFunc computes the position reached by playing a move. It returns
// nil if the move cannot be played.
type PositionFunc func(*board.Position, board.PossibleMove) *board.Position

// ScoreFunc scores a continuation for tie-break selection.
type ScoreFunc func(*Continuation) float32

type continuationEntry struct {
	move board.PossibleMove
	next *Continuation
}

// Continuation caches the moves explored so far from one position.
//
// A tree is owned by a single search goroutine. The position is shared with
// whoever else holds it and is never modified.
type Continuation struct {
	position *board.Position

	// AdjustedScore is the best score search found below this node, NaN
	// until search has scored it.
	AdjustedScore float32

	entries arena[continuationEntry]
}

// NewContinuation returns an empty, unscored node for pos.
func NewContinuation(pos *board.Position) *Continuation {
	return &Continuation{
		position:      pos,
		AdjustedScore: unsetScore(),
	}
}

// NewStartingContinuation returns an empty node for the initial position.
func NewStartingContinuation() *Continuation {
	return NewContinuation(board.StartingPosition())
}

// Position returns the shared position this node represents.
func (c *Continuation) Position() *board.Position { return c.position }

// HasScore reports whether search has set AdjustedScore.
func (c *Continuation) HasScore() bool { return !isUnset(c.AdjustedScore) }

// Len is the number of direct continuations.
func (c *Continuation) Len() int { return c.entries.len() }

// Each visits the direct continuations until fn returns false. The order
// carries no meaning.
func (c *Continuation) Each(fn func(board.PossibleMove, *Continuation) bool) {
	c.entries.each(func(_ slotIndex, e *continuationEntry) bool {
		return fn(e.move, e.next)
	})
}

// Moves returns the moves explored from this node.
func (c *Continuation) Moves() []board.PossibleMove {
	moves := make([]board.PossibleMove, 0, c.Len())
	c.Each(func(m board.PossibleMove, _ *Continuation) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// Children returns the direct child nodes.
func (c *Continuation) Children() []*Continuation {
	children := make([]*Continuation, 0, c.Len())
	c.Each(func(_ board.PossibleMove, next *Continuation) bool {
		children = append(children, next)
		return true
	})
	return children
}

func (c *Continuation) indexOf(move board.PossibleMove) (slotIndex, bool) {
	var found slotIndex
	ok := false
	c.entries.each(func(idx slotIndex, e *continuationEntry) bool {
		if e.move == move {
			found, ok = idx, true
			return false
		}
		return true
	})
	return found, ok
}

// HasContinuation reports whether move has been explored from here.
func (c *Continuation) HasContinuation(move board.PossibleMove) bool {
	_, ok := c.indexOf(move)
	return ok
}

// Add records move as explored, leading to pos, and returns the new empty
// child. It does not look for an existing entry for the same move.
func (c *Continuation) Add(move board.PossibleMove, pos *board.Position) *Continuation {
	next := NewContinuation(pos)
	c.entries.insert(continuationEntry{move: move, next: next})
	return next
}

// Find returns the child reached by move, or nil. The child stays in the tree.
func (c *Continuation) Find(move board.PossibleMove) *Continuation {
	idx, ok := c.indexOf(move)
	if !ok {
		return nil
	}
	e, _ := c.entries.get(idx)
	return e.next
}

// Take detaches the child reached by move and hands it to the caller, or
// returns nil. This node no longer references the child afterwards.
func (c *Continuation) Take(move board.PossibleMove) *Continuation {
	idx, ok := c.indexOf(move)
	if !ok {
		return nil
	}
	e, _ := c.entries.remove(idx)
	return e.next
}

// ApplyCachedMove steps forward by move. A cached continuation is taken out
// of this node and returned with all the work stored in it; otherwise
// fallback computes the new position and a fresh node is returned. The
// result is nil only when fallback rejects the move.
func (c *Continuation) ApplyCachedMove(move board.PossibleMove, fallback PositionFunc) *Continuation {
	if next := c.Take(move); next != nil {
		return next
	}
	pos := fallback(c.position, move)
	if pos == nil {
		return nil
	}
	return NewContinuation(pos)
}

// Merge moves every continuation of other, a tree over the same position,
// into c. Continuations both trees have are merged recursively, so no
// explored line is lost and no move appears twice. other is left empty.
// c keeps its own score unless it has none.
func (c *Continuation) Merge(other *Continuation) {
	if other == nil || other == c {
		return
	}
	if !c.HasScore() {
		c.AdjustedScore = other.AdjustedScore
	}
	for _, e := range other.entries.drain() {
		if mine := c.Find(e.move); mine != nil {
			mine.Merge(e.next)
			continue
		}
		c.entries.insert(e)
	}
}

// TotalSize counts every node below c, not counting c itself.
func (c *Continuation) TotalSize() int {
	children := c.Children()
	return len(children) + lo.SumBy(children, func(next *Continuation) int {
		return next.TotalSize()
	})
}

// SimilarQuality returns the children whose score is within
// SimilarScoreEpsilon of ref's score.
func (c *Continuation) SimilarQuality(ref *Continuation, score ScoreFunc) []*Continuation {
	refScore := score(ref)
	return lo.Filter(c.Children(), func(next *Continuation, _ int) bool {
		return absf(score(next)-refScore) < SimilarScoreEpsilon
	})
}

// PickSimilar picks uniformly at random among SimilarQuality(ref, score).
// Callers must make sure the set is not empty, usually by passing one of
// c's own children as ref; an empty set panics.
func (c *Continuation) PickSimilar(ref *Continuation, score ScoreFunc) *Continuation {
	choices := c.SimilarQuality(ref, score)
	if len(choices) == 0 {
		panic("engine: no continuation of similar quality to pick from")
	}
	return choices[frand.Intn(len(choices))]
}

// Render lists every explored line below c, one move per line, indented
// by depth and preceded by prefix. The format is for debugging only.
func (c *Continuation) Render(prefix string) string {
	var sb strings.Builder
	c.render(&sb, prefix, 0)
	return sb.String()
}

func (c *Continuation) render(sb *strings.Builder, prefix string, depth int) {
	c.Each(func(move board.PossibleMove, next *Continuation) bool {
		sb.WriteString(prefix)
		sb.WriteString(strings.Repeat(" ", depth))
		sb.WriteString(move.String())
		sb.WriteByte('\n')
		next.render(sb, prefix, depth+1)
		return true
	})
}
