// Command bbbuild builds the native barretenberg library with CMake and
// prints the CGO_LDFLAGS needed to link bb-go against it.
//
//	go run ./cmd/bbbuild -config bbbuild.toml
//	CGO_LDFLAGS="$(go run ./cmd/bbbuild -q)" go build -tags bbnative ./...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/aztecprotocol/bb-go/internal/nativebuild"
	"github.com/aztecprotocol/bb-go/pkg/bb/logging"
)

type dryRunner struct {
	out io.Writer
}

func (r dryRunner) Run(_ context.Context, c nativebuild.Command) error {
	_, err := fmt.Fprintf(r.out, "(cd %s && %s)\n", c.Dir, c)
	return err
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML build config (defaults are used when empty)")
		dryRun     = flag.Bool("dry-run", false, "print the cmake commands without running them")
		verbose    = flag.Bool("v", false, "enable debug logging")
		logFormat  = flag.String("log-format", "text", "log output format: text or json")
		quiet      = flag.Bool("q", false, "print only the linker flags")
	)
	flag.Parse()

	logger := newLogger(*logFormat, *verbose)
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *configPath, *dryRun, *quiet, logger); err != nil {
		logger.Error(ctx, "native build failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, dryRun, quiet bool, logger logging.Logger) error {
	cfg, err := nativebuild.Load(configPath)
	if err != nil {
		return err
	}

	var runner nativebuild.Runner = nativebuild.ExecRunner{Stdout: os.Stderr, Stderr: os.Stderr}
	if dryRun {
		runner = dryRunner{out: os.Stderr}
	}

	d, err := nativebuild.Build(ctx, cfg, runner, logger)
	if err != nil {
		return err
	}

	if quiet {
		fmt.Println(d.LDFlags())
		return nil
	}
	fmt.Printf("CGO_LDFLAGS=%q\n", d.LDFlags())
	return nil
}

func newLogger(format string, verbose bool) logging.Logger {
	if format == "json" {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		return logging.NewZerolog(zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger())
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
