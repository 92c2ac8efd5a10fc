package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"chesscore/config"
	"chesscore/engine"
	"chesscore/internal/logx"
	"chesscore/movegen"
	"chesscore/search"
)

func main() {
	var cfg config.Config
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logx.NewLogger(cfg.LogLevel)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("explore failed")
	}
}

func run(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	start, err := movegen.FromFEN(cfg.FEN)
	if err != nil {
		return err
	}

	// A saved tree is either for the FEN itself, in which case it is walked
	// along --moves with its cached work, or for the position reached after them.
	saved := loadRoot(cfg.SnapshotPath, logger)
	root := engine.NewContinuation(start)
	if saved != nil && saved.Position().Equal(start) {
		root, saved = saved, nil
	}
	if root, err = playMoves(root, cfg.Moves); err != nil {
		return err
	}
	if saved != nil {
		if saved.Position().Equal(root.Position()) {
			root = saved
		} else {
			logger.Warn().Str("snapshot", cfg.SnapshotPath).Msg("snapshot is for another position; starting fresh")
		}
	}
	pos := root.Position()
	for _, path := range cfg.MergeFrom {
		other, err := engine.LoadSnapshot(path)
		if err != nil {
			return fmt.Errorf("merge %s: %w", path, err)
		}
		if !other.Position().Equal(pos) {
			logger.Warn().Str("snapshot", path).Msg("skipping snapshot of another position")
			continue
		}
		root.Merge(other)
		logger.Info().Str("snapshot", path).Int("tree_size", root.TotalSize()).Msg("merged snapshot")
	}

	explorer := search.NewExplorer(cfg.Depth, logger)
	node := root
	for ply := 0; ply < cfg.Plies; ply++ {
		began := time.Now()
		res, err := explorer.Explore(ctx, node)
		if errors.Is(err, search.ErrNoMoves) {
			logger.Info().Int("ply", ply).Float32("score", node.AdjustedScore).Msg("game over")
			break
		}
		if err != nil {
			return err
		}
		logger.Info().
			Int("ply", ply).
			Str("move", res.Move.String()).
			Float32("score", res.Score).
			Bool("mate", engine.IsMate(res.Score)).
			Int("nodes", res.Nodes).
			Int("cache_hits", res.CacheHits).
			Dur("took", time.Since(began)).
			Msg("bestmove")
		fmt.Println(res.Move)
		node = res.Next
	}

	logger.Info().Int("tree_size", root.TotalSize()).Msg("search finished")
	if cfg.Render {
		fmt.Print(root.Render(""))
	}

	if cfg.SnapshotPath != "" {
		if err := engine.SaveSnapshot(cfg.SnapshotPath, root); err != nil {
			return err
		}
		logger.Info().Str("snapshot", cfg.SnapshotPath).Msg("stored continuation tree")
	}
	return nil
}

func playMoves(root *engine.Continuation, moves []string) (*engine.Continuation, error) {
	for _, s := range moves {
		m, err := movegen.ParseMove(s)
		if err != nil {
			return nil, err
		}
		if root, err = search.Advance(root, m); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// loadRoot restores a saved tree, or returns nil when there is none.
func loadRoot(path string, logger zerolog.Logger) *engine.Continuation {
	if path == "" {
		return nil
	}
	root, err := engine.LoadSnapshot(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Err(err).Str("snapshot", path).Msg("ignoring unreadable snapshot")
		}
		return nil
	}
	logger.Info().Str("snapshot", path).Int("tree_size", root.TotalSize()).Msg("restored continuation tree")
	return root
}
