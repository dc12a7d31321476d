package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/sdboyer/enumjen"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := &cli.App{
		Name:    "enumjen",
		Usage:   "generate TypeScript const enums from JSON, YAML and CSV data",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "outdir",
				Usage:   "directory generated files are written to",
				EnvVars: []string{"ENUMJEN_OUTDIR"},
			},
			&cli.StringFlag{
				Name:  "header",
				Usage: "comment added to the top of every generated file",
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "check generated files on disk are up to date instead of writing them",
			},
			&cli.BoolFlag{
				Name:  "no-clobber",
				Usage: "fail rather than replace existing files",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (error, warn, info, debug)",
				Value:   "info",
				EnvVars: []string{"ENUMJEN_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log output format (text, json)",
				Value: "text",
			},
		},
		Commands: []*cli.Command{
			fileCommand("json", "generate an enum from a JSON object or array", (*enumjen.Converter).FromJSON),
			fileCommand("yaml", "generate an enum from a YAML mapping or sequence", (*enumjen.Converter).FromYAML),
			fileCommand("csv", "generate one enum per column of a CSV file", (*enumjen.Converter).FromCSV),
			cmdList,
			cmdBatch,
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.RunContext(ctx, args)
}

type convertFunc func(c *enumjen.Converter, ctx context.Context, path, name string) error

var watchFlag = &cli.BoolFlag{
	Name:    "watch",
	Aliases: []string{"w"},
	Usage:   "regenerate whenever the input file changes",
}

func fileCommand(name, usage string, convert convertFunc) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<file> <name>",
		Flags:     []cli.Flag{watchFlag},
		Action: func(cctx *cli.Context) error {
			if cctx.Args().Len() != 2 {
				return fmt.Errorf("%s: expected <file> and <name> arguments, got %d", name, cctx.Args().Len())
			}
			path, enumName := cctx.Args().Get(0), cctx.Args().Get(1)

			c, err := newConverter(cctx)
			if err != nil {
				return err
			}
			gen := func(string) error {
				if err := convert(c, cctx.Context, path, enumName); err != nil {
					return err
				}
				c.Logger.Info("generated enums", "source", path, "name", enumName)
				return nil
			}

			if !cctx.Bool("watch") {
				return gen(path)
			}
			if err := gen(path); err != nil {
				c.Logger.Error("initial generation failed", "err", err)
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			return watch(cctx.Context, c.Logger, []string{abs}, gen)
		},
	}
}

var cmdList = &cli.Command{
	Name:      "list",
	Usage:     "generate an enum from values given on the command line",
	ArgsUsage: "<name> <value>...",
	Action: func(cctx *cli.Context) error {
		if cctx.Args().Len() < 2 {
			return fmt.Errorf("list: expected <name> and at least one <value>")
		}
		c, err := newConverter(cctx)
		if err != nil {
			return err
		}
		enumName := cctx.Args().First()
		return c.FromArray(cctx.Context, cctx.Args().Tail(), enumName)
	},
}

// newConverter builds a Converter from the global flags.
func newConverter(cctx *cli.Context) (*enumjen.Converter, error) {
	logger, err := configLogger(cctx, cctx.App.ErrWriter)
	if err != nil {
		return nil, err
	}
	return &enumjen.Converter{
		Logger:    logger,
		OutDir:    cctx.String("outdir"),
		Header:    cctx.String("header"),
		Verify:    cctx.Bool("verify"),
		NoClobber: cctx.Bool("no-clobber"),
	}, nil
}

func configLogger(cctx *cli.Context, w io.Writer) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info", "":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("unknown log level: %q", cctx.String("log-level"))
	}

	hopts := slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cctx.String("log-format") {
	case "text", "":
		handler = slog.NewTextHandler(w, &hopts)
	case "json":
		handler = slog.NewJSONHandler(w, &hopts)
	default:
		return nil, fmt.Errorf("unknown log format: %q", cctx.String("log-format"))
	}
	return slog.New(handler), nil
}
