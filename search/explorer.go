package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"chesscore/board"
	"chesscore/engine"
	"chesscore/movegen"
)

var ErrNoMoves = errors.New("no legal moves")

// mateStep is how far a mate score moves towards zero for every ply it is
// carried up the tree, so shorter mates score higher.
const mateStep float32 = 1

// Result describes the move chosen by one Explore call.
type Result struct {
	Move  board.PossibleMove
	Score float32
	Next  *engine.Continuation

	// Nodes is the number of nodes scored, CacheHits how many of them were
	// already in the tree.
	Nodes     int
	CacheHits int
}

// Explorer runs a fixed-depth minimax over a continuation tree. Every node
// it visits is added to the tree, so calling Explore again on the same
// tree reuses the earlier work.
type Explorer struct {
	Depth int
	Log   zerolog.Logger

	nodes     int
	cacheHits int
}

func NewExplorer(depth int, log zerolog.Logger) *Explorer {
	return &Explorer{Depth: depth, Log: log}
}

// Explore scores root to the configured depth and picks one of the best
// moves, chosen at random among moves whose scores are within
// engine.SimilarScoreEpsilon of each other. The chosen child stays in the tree.
func (e *Explorer) Explore(ctx context.Context, root *engine.Continuation) (Result, error) {
	e.nodes, e.cacheHits = 0, 0
	depth := e.Depth
	if depth < 1 {
		depth = 1
	}

	if _, err := e.minimax(ctx, root, depth); err != nil {
		return Result{}, err
	}

	white := root.Position().Turn() == board.White
	var best *engine.Continuation
	root.Each(func(_ board.PossibleMove, next *engine.Continuation) bool {
		if !next.HasScore() {
			return true
		}
		if best == nil ||
			(white && next.AdjustedScore > best.AdjustedScore) ||
			(!white && next.AdjustedScore < best.AdjustedScore) {
			best = next
		}
		return true
	})
	if best == nil {
		return Result{}, fmt.Errorf("%w in %s", ErrNoMoves, movegen.ToFEN(root.Position()))
	}

	chosen := root.PickSimilar(best, adjustedScore)
	res := Result{
		Score:     chosen.AdjustedScore,
		Next:      chosen,
		Nodes:     e.nodes,
		CacheHits: e.cacheHits,
	}
	root.Each(func(m board.PossibleMove, next *engine.Continuation) bool {
		if next == chosen {
			res.Move = m
			return false
		}
		return true
	})

	e.Log.Debug().
		Str("move", res.Move.String()).
		Float32("score", res.Score).
		Int("nodes", res.Nodes).
		Int("cache_hits", res.CacheHits).
		Int("tree_size", root.TotalSize()).
		Msg("explored position")
	return res, nil
}

func adjustedScore(c *engine.Continuation) float32 { return c.AdjustedScore }

func (e *Explorer) minimax(ctx context.Context, node *engine.Continuation, depth int) (float32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	e.nodes++

	pos := node.Position()
	static := engine.ScorePosition(pos)
	if depth == 0 || engine.IsMate(static) {
		node.AdjustedScore = static
		return static, nil
	}

	moves := movegen.LegalMoves(pos)
	if len(moves) == 0 {
		node.AdjustedScore = terminalScore(pos)
		return node.AdjustedScore, nil
	}

	white := pos.Turn() == board.White
	var best float32
	first := true
	for _, m := range moves {
		next := node.Find(m)
		if next != nil {
			e.cacheHits++
		} else {
			nextPos := movegen.Apply(pos, m)
			if nextPos == nil {
				continue
			}
			next = node.Add(m, nextPos)
		}

		score, err := e.minimax(ctx, next, depth-1)
		if err != nil {
			return 0, err
		}
		if first || (white && score > best) || (!white && score < best) {
			best = score
			first = false
		}
	}

	best = decayMate(best)
	node.AdjustedScore = best
	return best, nil
}

// terminalScore scores a position without legal moves: the side to move
// is mated when in check, otherwise it is stalemate.
func terminalScore(pos *board.Position) float32 {
	if !movegen.InCheck(pos) {
		return 0
	}
	if pos.Turn() == board.White {
		return -engine.Mate
	}
	return engine.Mate
}

func decayMate(score float32) float32 {
	if !engine.IsMate(score) {
		return score
	}
	if score > 0 {
		return score - mateStep
	}
	return score + mateStep
}

// Advance steps root forward by move, keeping whatever was already
// explored below it. The returned node has been taken out of root.
func Advance(root *engine.Continuation, move board.PossibleMove) (*engine.Continuation, error) {
	next := root.ApplyCachedMove(move, movegen.Apply)
	if next == nil {
		return nil, fmt.Errorf("%w %s in %s", movegen.ErrInvalidMove, move, movegen.ToFEN(root.Position()))
	}
	return next, nil
}

// Expand adds every legal line up to depth plies below node, reusing
// children already in the tree, and returns the number of leaves reached.
// On a complete tree the count equals movegen.Perft.
func Expand(node *engine.Continuation, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pos := node.Position()
	var leaves uint64
	for _, m := range movegen.LegalMoves(pos) {
		next := node.Find(m)
		if next == nil {
			nextPos := movegen.Apply(pos, m)
			if nextPos == nil {
				continue
			}
			next = node.Add(m, nextPos)
		}
		leaves += Expand(next, depth-1)
	}
	return leaves
}
