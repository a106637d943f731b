package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"medman/internal/catalog"
	"medman/internal/errors"
	"medman/internal/export"
)

const previewWidth = 100

// session is the state of one interactive run: the latest catalog and the latest search.
type session struct {
	*env

	catalog *catalog.Catalog
	request string
	results []*catalog.Record
}

func newSession(e *env) *session {
	return &session{env: e}
}

func (s *session) run() error {
	fmt.Fprintln(s.out, "Welcome to medman. Type help for the list of commands.")

	input := bufio.NewReader(s.in)
	for {
		fmt.Fprintf(s.out, "\n[medman | %s files] > ", commatize(s.catalog.Len()))

		line, err := input.ReadString('\n')
		if err != nil && !errors.IsError(err, io.EOF) {
			return errors.WithStackTrace(err)
		}
		if err != nil && line == "" {
			fmt.Fprintln(s.errOut, "\nGoodbye.")
			return nil
		}

		if quit := s.dispatch(strings.TrimSpace(line)); quit {
			return nil
		}
	}
}

// dispatch runs one command line and reports whether the session should end.
func (s *session) dispatch(line string) bool {
	if line == "" {
		return false
	}

	cmd, arg := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i:])
	}

	switch cmd {
	case "scan":
		s.scan(arg)
	case "search":
		s.search(line, arg)
	case "write2md":
		s.export(arg, export.Markdown{})
	case "export":
		s.exportAny(arg)
	case "preview":
		s.preview()
	case "syntax":
		fmt.Fprint(s.out, syntaxGuide)
	case "help":
		fmt.Fprint(s.out, interactiveHelp)
	case "quit", "exit":
		return true
	default:
		s.log.Errorf("Unknown command %q. Type help for the list of commands.", cmd)
	}

	return false
}

func (s *session) scan(path string) {
	if path == "" {
		s.log.Error("Missing directory: scan <path>")
		return
	}

	cat, err := s.scanRoot(path)
	if err != nil {
		s.log.WithError(err).Error("Scan failed")
		return
	}

	s.catalog = cat
	printRecords(s.out, cat.Records())
}

func (s *session) search(line, query string) {
	if s.catalog.Len() == 0 {
		s.log.Error("No media files scanned yet: scan <path> first")
		return
	}
	if query == "" {
		s.log.Error("Missing query: search <query>")
		return
	}

	s.request = line
	s.results = s.engine.Query(s.catalog, query)
	printReport(s.out, s.report())
}

func (s *session) exportAny(file string) {
	if file == "" {
		s.log.Error("Missing file: export <file>")
		return
	}

	exporter, err := export.ForPath(file)
	if err != nil {
		s.log.Error(err)
		return
	}
	s.export(file, exporter)
}

func (s *session) export(file string, exporter export.Exporter) {
	if len(s.results) == 0 {
		s.log.Error("No results to export: search <query> first")
		return
	}
	if file == "" {
		s.log.Error("Missing file: write2md <file>")
		return
	}

	path, err := expandPath(file)
	if err != nil {
		s.log.Error(err)
		return
	}

	if err := exporter.Export(path, s.report()); err != nil {
		s.log.WithError(err).Error("Export failed")
		return
	}
	fmt.Fprintf(s.out, "Request exported to %s\n", path)
}

func (s *session) preview() {
	if len(s.results) == 0 {
		s.log.Error("Nothing to preview: search <query> first")
		return
	}

	if err := export.Preview(s.out, s.report(), isTerminal(s.out), previewWidth); err != nil {
		s.log.WithError(err).Error("Preview failed")
	}
}

func (s *session) report() export.Report {
	return export.Report{Request: s.request, Results: s.results}
}
