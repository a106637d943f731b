// Package scan builds a catalog by walking a directory tree and decoding the tags of every
// supported media file.
package scan

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"medman/internal/catalog"
	"medman/internal/errors"
)

// DefaultExtensions are the file extensions scanned when none are configured.
var DefaultExtensions = []string{"mp3"}

// Options configures a Scanner.
type Options struct {
	// Extensions lists supported extensions without the dot. Matching ignores case.
	Extensions []string
	// Strict aborts the whole scan on the first unreadable entry instead of skipping it.
	Strict bool
	// Progress, when set, receives a progress bar for the decode phase.
	Progress io.Writer
	// Decoder defaults to TagDecoder.
	Decoder Decoder
}

// Scanner builds catalogs.
type Scanner struct {
	log        logrus.FieldLogger
	decoder    Decoder
	extensions map[string]bool
	strict     bool
	progress   io.Writer
}

// NewScanner returns a scanner logging to log.
func NewScanner(log logrus.FieldLogger, opts Options) *Scanner {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	s := &Scanner{
		log:        log,
		decoder:    opts.Decoder,
		extensions: make(map[string]bool, len(exts)),
		strict:     opts.Strict,
		progress:   opts.Progress,
	}
	for _, ext := range exts {
		s.extensions[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}
	if s.decoder == nil {
		s.decoder = TagDecoder{Log: log}
	}
	return s
}

// Scan walks root and returns its catalog in traversal order.
//
// In strict mode the first walk or decode failure aborts the scan and no catalog is returned.
// Otherwise failing entries are logged and skipped: the catalog holds every readable file and the
// error, if any, is a *multierror.Error listing what was skipped.
func (s *Scanner) Scan(root string) (*catalog.Catalog, error) {
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "cannot scan %q", root)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("cannot scan %q: not a directory", root)
	}

	var skipped *multierror.Error

	paths, err := s.walk(root, &skipped)
	if err != nil {
		return nil, err
	}

	bar := s.newProgressBar(len(paths))

	records := make([]*catalog.Record, 0, len(paths))
	for _, path := range paths {
		rec, err := s.decoder.Decode(path)
		if bar != nil {
			_ = bar.Add(1)
		}
		if err != nil {
			err = errors.WithStackTraceAndPrefix(err, "decoding %s", path)
			if s.strict {
				return nil, err
			}
			s.log.WithError(err).WithField("path", path).Warn("Skipping unreadable media file")
			skipped = multierror.Append(skipped, err)
			continue
		}

		s.log.WithField("path", path).Debug("Decoded media file")
		records = append(records, rec)
	}

	if bar != nil {
		_ = bar.Finish()
	}

	s.log.WithFields(logrus.Fields{
		"root":    root,
		"files":   len(records),
		"skipped": countErrors(skipped),
	}).Info("Scan complete")

	return catalog.New(root, records...), skipped.ErrorOrNil()
}

func (s *Scanner) walk(root string, skipped **multierror.Error) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if s.strict {
				return walkErr
			}
			s.log.WithError(walkErr).WithField("path", path).Warn("Skipping unreadable entry")
			*skipped = multierror.Append(*skipped, walkErr)
			return nil
		}

		if d.IsDir() || !s.supported(d.Name()) {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "walking %s", root)
	}

	return paths, nil
}

func (s *Scanner) supported(name string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	return s.extensions[strings.ToLower(ext[1:])]
}

func (s *Scanner) newProgressBar(total int) *progressbar.ProgressBar {
	if s.progress == nil || total == 0 {
		return nil
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(s.progress),
		progressbar.OptionSetDescription("Scanning"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func countErrors(merr *multierror.Error) int {
	if merr == nil {
		return 0
	}
	return len(merr.Errors)
}
