package export

import (
	"encoding/json"
	"io"
	"strings"

	"medman/internal/catalog"
	"medman/internal/errors"
)

// JSON writes a report as a single JSON object. Indent is the number of spaces per level;
// zero produces compact output.
type JSON struct {
	Indent int
}

type jsonReport struct {
	Request string            `json:"request"`
	Count   int               `json:"count"`
	Results []*catalog.Record `json:"results"`
}

func (j JSON) Export(path string, r Report) error {
	return writeFile(path, r, j)
}

func (j JSON) Write(w io.Writer, r Report) error {
	results := r.Results
	if results == nil {
		results = []*catalog.Record{}
	}

	enc := json.NewEncoder(w)
	if j.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", j.Indent))
	}

	return errors.WithStackTrace(enc.Encode(jsonReport{
		Request: r.Request,
		Count:   len(results),
		Results: results,
	}))
}
