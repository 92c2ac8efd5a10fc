package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"chesscore/board"
	"chesscore/engine"
	"chesscore/movegen"
	"chesscore/search"
)

type options struct {
	depth  int
	repeat int
	label  string
}

func main() {
	fen := flag.String("fen", movegen.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	tree := flag.Bool("tree", false, "Count by building a continuation tree and report its size")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}
	pos, err := movegen.FromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FromFEN error: %v\n", err)
		os.Exit(2)
	}

	opts := options{depth: *depth, repeat: max(*repeat, 1), label: *label}
	switch {
	case *divide:
		printDivide(pos, opts.depth)
	case *tree:
		timeTree(pos, opts)
	default:
		timePerft(pos, opts)
	}
}

func printDivide(pos *board.Position, depth int) {
	div := movegen.PerftDivide(pos, depth)
	moves := make([]board.PossibleMove, 0, len(div))
	for m := range div {
		moves = append(moves, m)
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })

	var sum uint64
	for _, m := range moves {
		fmt.Printf("%s: %d\n", m, div[m])
		sum += div[m]
	}
	fmt.Printf("Total: %d\n", sum)
}

// Label Depth Nodes Time NPS
func report(opts options, nodes uint64, elapsed time.Duration, extra string) {
	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f%s\n", opts.label, opts.depth, nodes, elapsed, nps, extra)
}

func timePerft(pos *board.Position, opts options) {
	var nodes uint64
	start := time.Now()
	for i := 0; i < opts.repeat; i++ {
		nodes += movegen.Perft(pos, opts.depth)
	}
	report(opts, nodes, time.Since(start), "")
}

// timeTree builds the tree on the first round. Later rounds find every child
// in the tree and skip applying moves.
func timeTree(pos *board.Position, opts options) {
	root := engine.NewContinuation(pos)
	var nodes uint64
	start := time.Now()
	for i := 0; i < opts.repeat; i++ {
		nodes += search.Expand(root, opts.depth)
	}
	report(opts, nodes, time.Since(start), fmt.Sprintf(" \ttree=%d", root.TotalSize()))
}
