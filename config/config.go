package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "CHESSCORE"

	defaultFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

type Config struct {
	FEN          string
	Depth        int
	Plies        int
	SnapshotPath string
	MergeFrom    []string
	Moves        []string
	Render       bool
	LogLevel     string
}

// Load fills c from args, CHESSCORE_* environment variables and an
// optional config file named by --config, in that order of precedence.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("chesscore", pflag.ContinueOnError)
	fs.String("config", "", "optional config file (yaml, json or toml)")
	fs.String("fen", defaultFEN, "position to explore")
	fs.Int("depth", 3, "search depth in plies")
	fs.Int("plies", 1, "number of moves to play out from the position")
	fs.String("snapshot-path", "", "file the continuation tree is loaded from and saved to")
	fs.StringSlice("merge-from", nil, "snapshots of the same position to merge into the tree")
	fs.StringSlice("moves", nil, "moves in UCI notation to play from the position before exploring")
	fs.Bool("render", false, "print the explored tree")
	fs.String("log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	c.FEN = v.GetString("fen")
	c.Depth = v.GetInt("depth")
	c.Plies = v.GetInt("plies")
	c.SnapshotPath = v.GetString("snapshot-path")
	c.MergeFrom = splitList(v.GetStringSlice("merge-from"))
	c.Moves = splitList(v.GetStringSlice("moves"))
	c.Render = v.GetBool("render")
	c.LogLevel = v.GetString("log-level")
	return c.validate()
}

func (c *Config) validate() error {
	if c.Depth < 1 {
		return errors.New("depth must be at least 1")
	}
	if c.Plies < 0 {
		return errors.New("plies must not be negative")
	}
	if strings.TrimSpace(c.FEN) == "" {
		return errors.New("fen must not be empty")
	}
	return nil
}

// splitList flattens comma separated entries. Values from the environment or
// a config file scalar reach us split on whitespace only.
func splitList(values []string) []string {
	parts := lo.FlatMap(values, func(s string, _ int) []string {
		return strings.Split(s, ",")
	})
	return lo.Compact(lo.Map(parts, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}
