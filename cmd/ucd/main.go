package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ucd"
	"github.com/fwojciec/ucd/fs"
	ucdhttp "github.com/fwojciec/ucd/http"
	ucdslog "github.com/fwojciec/ucd/slog"
	"github.com/fwojciec/ucd/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,

		NewFetcher: func(timeout time.Duration, verbose bool) ucd.Fetcher {
			var f ucd.Fetcher = ucdhttp.NewFetcher(ucdhttp.WithTimeout(timeout))
			if verbose {
				logger := slog.New(slog.NewTextHandler(stderr, nil))
				f = ucdslog.NewLoggingFetcher(f, logger)
			}
			return f
		},
		NewStore: func(root string) ucd.DataStore {
			return fs.NewStore(root)
		},
		OpenIndex: func(path string) (ucd.IndexService, func() error, error) {
			db := sqlite.NewDB(path)
			if err := db.Open(); err != nil {
				return nil, nil, fmt.Errorf("failed to open database at %q: %w", path, err)
			}
			return sqlite.NewIndexService(db), db.Close, nil
		},
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ucd"),
		kong.Description("Mirror, parse and query the Unicode Character Database"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ucd --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kctx.Run()
}
