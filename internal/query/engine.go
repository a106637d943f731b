package query

import (
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"medman/internal/catalog"
	"medman/internal/errors"
)

// MatchMode decides how the clauses of one query combine.
type MatchMode int

const (
	// MatchEach appends a record once for every clause it satisfies. Records matching several
	// clauses appear several times and records matching none are left out.
	MatchEach MatchMode = iota
	// MatchAll keeps a record once when it satisfies every clause that could be evaluated.
	// Clauses with an unrecognized field or an unparsable value are ignored; a query with no
	// usable clause matches nothing.
	MatchAll
)

// ParseMatchMode accepts "each" and "all".
func ParseMatchMode(s string) (MatchMode, error) {
	switch s {
	case "each", "":
		return MatchEach, nil
	case "all":
		return MatchAll, nil
	default:
		return MatchEach, errors.Errorf("unknown match mode %q, expected each or all", s)
	}
}

func (m MatchMode) String() string {
	if m == MatchAll {
		return "all"
	}
	return "each"
}

// Engine parses query strings and evaluates them against a catalog. Diagnostics go to its logger.
type Engine struct {
	log  logrus.FieldLogger
	mode MatchMode
}

// Option configures an Engine.
type Option func(*Engine)

// WithMatchMode sets how clauses combine. The default is MatchEach.
func WithMatchMode(mode MatchMode) Option {
	return func(e *Engine) {
		e.mode = mode
	}
}

// New returns an engine reporting diagnostics to log. A nil log discards them.
func New(log logrus.FieldLogger, opts ...Option) *Engine {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	e := &Engine{log: log}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode reports the engine's match mode.
func (e *Engine) Mode() MatchMode {
	return e.mode
}

// Query parses input and evaluates it against c.
func (e *Engine) Query(c *catalog.Catalog, input string) []*catalog.Record {
	return e.Search(c, e.Parse(input))
}

// Search returns the records of c selected by clauses, in catalog order. Values are parsed
// for every record evaluated, so a bad value is reported once per record.
func (e *Engine) Search(c *catalog.Catalog, clauses []Clause) []*catalog.Record {
	var results []*catalog.Record

	for _, r := range c.All {
		if e.mode == MatchAll {
			if e.matchesAll(r, clauses) {
				results = append(results, r)
			}
			continue
		}

		for _, clause := range clauses {
			if matched, _ := e.match(r, clause); matched {
				results = append(results, r)
			}
		}
	}

	return results
}

func (e *Engine) matchesAll(r *catalog.Record, clauses []Clause) bool {
	usable, all := 0, true

	for _, clause := range clauses {
		matched, ok := e.match(r, clause)
		if !ok {
			continue
		}
		usable++
		all = all && matched
	}

	return usable > 0 && all
}

// match compares one clause with one record. ok is false when the clause could not be evaluated.
func (e *Engine) match(r *catalog.Record, c Clause) (matched, ok bool) {
	switch c.Field {
	case Path:
		return r.Path == c.Value, true
	case Title:
		return r.Title == c.Value, true
	case Author:
		return r.Author == c.Value, true
	case Album:
		return r.Album == c.Value, true
	case Genre:
		return r.Genre == c.Value, true
	case Size:
		n, err := parseUnsigned(c.Value, 64)
		if err != nil {
			e.reject(r, c, "value is not an unsigned integer")
			return false, false
		}
		return r.Size == n, true
	case Year:
		n, err := parseUnsigned(c.Value, 16)
		if err != nil {
			e.reject(r, c, "value is not a year")
			return false, false
		}
		return r.Year == uint16(n), true
	case Duration:
		d, err := ParseDuration(c.Value)
		if err != nil {
			e.reject(r, c, "value is not a duration")
			return false, false
		}
		return r.Duration == d, true
	case Unrecognized:
	}

	e.reject(r, c, "unknown field")
	return false, false
}

// parseUnsigned accepts one optional leading '+'.
func parseUnsigned(s string, bits int) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bits)
}

func (e *Engine) reject(r *catalog.Record, c Clause, reason string) {
	e.log.WithFields(logrus.Fields{
		"clause": c.String(),
		"path":   r.Path,
	}).Warnf("Ignoring clause: %s", reason)
}
