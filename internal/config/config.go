// Package config builds the effective medman configuration from command-line flags and
// MEDMAN_* environment variables.
package config

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"medman/internal/errors"
	"medman/internal/query"
	"medman/internal/scan"
)

// Flag names shared by every command.
const (
	FlagLogLevel   = "log-level"
	FlagExtensions = "ext"
	FlagStrict     = "strict"
	FlagMatch      = "match"
	FlagNoProgress = "no-progress"
)

// Config is the effective configuration of one run.
type Config struct {
	LogLevel   logrus.Level
	Extensions []string
	Strict     bool
	MatchMode  query.MatchMode
	Progress   bool
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel:   logrus.InfoLevel,
		Extensions: append([]string(nil), scan.DefaultExtensions...),
		MatchMode:  query.MatchEach,
		Progress:   true,
	}
}

// Flags returns the global flags. Every flag can also be set through its MEDMAN_* variable.
func Flags() []cli.Flag {
	def := Default()

	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagLogLevel,
			Usage:   "Log level: panic, fatal, error, warn, info, debug or trace",
			EnvVars: []string{"MEDMAN_LOG_LEVEL"},
			Value:   def.LogLevel.String(),
		},
		&cli.StringSliceFlag{
			Name:    FlagExtensions,
			Usage:   "Supported media file extension (repeatable)",
			EnvVars: []string{"MEDMAN_EXTENSIONS"},
			Value:   cli.NewStringSlice(def.Extensions...),
		},
		&cli.BoolFlag{
			Name:    FlagStrict,
			Usage:   "Abort a scan on the first unreadable file instead of skipping it",
			EnvVars: []string{"MEDMAN_STRICT"},
		},
		&cli.StringFlag{
			Name:    FlagMatch,
			Usage:   "How query clauses combine: each (a record is listed once per matching clause) or all",
			EnvVars: []string{"MEDMAN_MATCH"},
			Value:   def.MatchMode.String(),
		},
		&cli.BoolFlag{
			Name:    FlagNoProgress,
			Usage:   "Disable the scan progress bar",
			EnvVars: []string{"MEDMAN_NO_PROGRESS"},
		},
	}
}

// FromContext reads the global flags of c into a validated Config.
func FromContext(c *cli.Context) (*Config, error) {
	cfg := Default()

	level, err := logrus.ParseLevel(c.String(FlagLogLevel))
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}
	cfg.LogLevel = level

	mode, err := query.ParseMatchMode(c.String(FlagMatch))
	if err != nil {
		return nil, err
	}
	cfg.MatchMode = mode

	cfg.Extensions = splitExtensions(c.StringSlice(FlagExtensions))
	cfg.Strict = c.Bool(FlagStrict)
	cfg.Progress = !c.Bool(FlagNoProgress)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that flags alone cannot constrain.
func (cfg *Config) Validate() error {
	if len(cfg.Extensions) == 0 {
		return errors.New("at least one media file extension is required")
	}

	for _, ext := range cfg.Extensions {
		if strings.ContainsAny(ext, `/\`) {
			return errors.Errorf("invalid extension %q", ext)
		}
	}

	return nil
}

// splitExtensions accepts "mp3,flac" as well as repeated flags and drops dots and blanks.
func splitExtensions(values []string) []string {
	var exts []string
	for _, v := range values {
		for _, ext := range strings.Split(v, ",") {
			ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
			if ext != "" {
				exts = append(exts, ext)
			}
		}
	}
	return exts
}
