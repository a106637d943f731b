package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"medman/internal/catalog"
	"medman/internal/config"
	"medman/internal/errors"
	"medman/internal/query"
	"medman/internal/scan"
)

// cataloger builds a catalog from a directory tree.
type cataloger interface {
	Scan(root string) (*catalog.Catalog, error)
}

// env carries the streams and collaborators shared by every command.
type env struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	log     *logrus.Logger
	cfg     *config.Config
	engine  *query.Engine
	scanner cataloger
}

func main() {
	e := &env{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}

	if err := newApp(e).Run(os.Args); err != nil {
		if e.log != nil {
			e.log.Error(err)
			e.log.Debug(errors.ErrorWithStackTrace(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(errors.ExitCode(err))
	}
}

func newApp(e *env) *cli.App {
	return &cli.App{
		Name:      "medman",
		Usage:     "Catalog audio files and query their metadata",
		UsageText: "medman [global options] <command> <path> [arguments]\nmedman [global options]            (interactive mode)",
		Description: `medman scans a directory tree for audio files, reads their tags and answers
field:value queries over the resulting catalog. Results can be exported to
markdown, JSON or SQLite documents.

Run without a command to start the interactive mode. Use --syntax for the
query language reference.`,
		Reader:    e.in,
		Writer:    e.out,
		ErrWriter: e.errOut,
		Flags: append(config.Flags(), &cli.BoolFlag{
			Name:  "syntax",
			Usage: "Show the query syntax guide",
		}),
		Before: e.setup,
		Commands: []*cli.Command{
			scanCommand(e),
			searchCommand(e),
			write2mdCommand(e),
			exportCommand(e),
		},
		Action: func(c *cli.Context) error {
			if c.Bool("syntax") {
				fmt.Fprint(e.out, syntaxGuide)
				return nil
			}

			if c.Args().Present() {
				_ = cli.ShowAppHelp(c)
				return errors.WithExitCode(errors.Errorf("unsupported command %q: supported commands are scan, search, write2md and export", c.Args().First()), 2)
			}

			return newSession(e).run()
		},
	}
}

func (e *env) setup(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return errors.WithExitCode(err, 2)
	}
	e.cfg = cfg

	if e.log == nil {
		e.log = newLogger(e.errOut)
	}
	e.log.SetLevel(cfg.LogLevel)

	e.engine = query.New(e.log, query.WithMatchMode(cfg.MatchMode))
	e.log.WithFields(logrus.Fields{
		"match":      e.engine.Mode(),
		"extensions": strings.Join(cfg.Extensions, ","),
		"strict":     cfg.Strict,
	}).Debug("Configuration loaded")

	if e.scanner == nil {
		e.scanner = scan.NewScanner(e.log, scan.Options{
			Extensions: cfg.Extensions,
			Strict:     cfg.Strict,
			Progress:   terminal(e.errOut, cfg.Progress),
		})
	}

	return nil
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	return log
}

// terminal returns w when it is an interactive terminal and enabled is set, nil otherwise.
func terminal(w io.Writer, enabled bool) io.Writer {
	if !enabled || !isTerminal(w) {
		return nil
	}
	return w
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// expandPath resolves "~" and makes path absolute.
func expandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.WithStackTrace(err)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.WithStackTrace(err)
	}
	return abs, nil
}

// scanRoot scans path. Files skipped in lenient mode are only counted here: the scanner has
// already logged each of them, and a partial catalog is still usable.
func (e *env) scanRoot(path string) (*catalog.Catalog, error) {
	root, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	cat, err := e.scanner.Scan(root)
	if cat == nil {
		return nil, err
	}

	var skipped *multierror.Error
	if errors.As(err, &skipped) {
		e.log.Warnf("%d unreadable files left out of the catalog of %s", len(skipped.Errors), root)
	} else if err != nil {
		return nil, err
	}

	return cat, nil
}
