package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"

	"chesscore/board"
	"chesscore/engine"
	"chesscore/internal/logx"
	"chesscore/movegen"
	"chesscore/search"
)

func main() {
	depthFlag := flag.Int("depth", 3, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", movegen.FENStartPos, "FEN to search")
	reuse := flag.Bool("reuse", false, "keep the continuation tree between runs")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	logger := logx.NewLogger(*logLevel)
	if *depthFlag <= 0 {
		logger.Fatal().Int("depth", *depthFlag).Msg("depth must be positive")
	}

	pos, err := movegen.FromFEN(*fenFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad fen")
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d reuse=%v\n", *fenFlag, *depthFlag, *repeatFlag, *reuse)
	run(pos, *depthFlag, *repeatFlag, *reuse, logger)

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			logger.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}

func run(pos *board.Position, depth, repeat int, reuse bool, logger zerolog.Logger) {
	explorer := search.NewExplorer(depth, logger)
	root := engine.NewContinuation(pos)

	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		if !reuse {
			root = engine.NewContinuation(pos)
		}
		iterStart := time.Now()
		res, err := explorer.Explore(context.Background(), root)
		if err != nil {
			logger.Fatal().Err(err).Int("iteration", i+1).Msg("search failed")
		}
		fmt.Printf("iteration %d: bestmove %v score=%.1f nodes=%d hits=%d tree=%d time=%v\n",
			i+1, res.Move, res.Score, res.Nodes, res.CacheHits, root.TotalSize(), time.Since(iterStart))
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))
}
