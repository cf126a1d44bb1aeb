// Command boardgen prints a random tile-matching board.
//
// Usage:
//
//	boardgen --rows 4 --cols 6 --kinds A,B,C,D --seed 7
//
// Tiles of each kind appear in whole groups (--group-size, pairs by default)
// and the board is wrapped in a border of --empty cells.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/tilegrid/board"
	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/random"
)

type options struct {
	rows, cols int
	kinds      []string
	groupSize  int
	seed       int64
	empty      string
	logLevel   string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := pflag.NewFlagSet("boardgen", pflag.ContinueOnError)
	fs.IntVar(&o.rows, "rows", 4, "board rows")
	fs.IntVar(&o.cols, "cols", 6, "board columns")
	fs.StringSliceVar(&o.kinds, "kinds", []string{"A", "B", "C", "D", "E", "F"}, "tile kinds")
	fs.IntVar(&o.groupSize, "group-size", random.DefaultGroupSize, "tiles per group")
	fs.Int64Var(&o.seed, "seed", 0, "placement seed (0 picks one from the clock)")
	fs.StringVar(&o.empty, "empty", ".", "border cell label")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.groupSize < 1 {
		return o, fmt.Errorf("--group-size must be positive, got %d", o.groupSize)
	}

	return o, nil
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("--log-level: %w", err)
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

func render(w io.Writer, g grid.Grid[string]) error {
	for _, row := range g {
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}

	return nil
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	log, err := newLogger(o.logLevel)
	if err != nil {
		return err
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	log.Debug().
		Int("rows", o.rows).
		Int("cols", o.cols).
		Strs("kinds", o.kinds).
		Int("group_size", o.groupSize).
		Int64("seed", o.seed).
		Msg("generating board")

	b, err := board.New(o.rows, o.cols, o.kinds, o.empty,
		board.WithGroupSize(o.groupSize), board.WithSeed(o.seed))
	if err != nil {
		log.Error().Err(err).Msg("board generation failed")
		return err
	}
	log.Info().Int("rows", b.Rows()).Int("cols", len(b[0])).Int64("seed", o.seed).Msg("board ready")

	return render(stdout, b)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "boardgen:", err)
		os.Exit(1)
	}
}
