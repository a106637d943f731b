package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"medman/internal/errors"
)

// Markdown renders a report as a markdown document with one JSON blockquote per result.
type Markdown struct{}

func (m Markdown) Export(path string, r Report) error {
	return writeFile(path, r, m)
}

func (Markdown) Write(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "# RESULTS OF YOUR REQUESTS\n\n")
	fmt.Fprint(bw, "## Summary:\n\n")
	fmt.Fprint(bw, "**Request:**\n\n")
	fmt.Fprintf(bw, "%s\n\n", inlineCode(r.Request))
	fmt.Fprintf(bw, "**Number of results: %d**\n\n", len(r.Results))
	fmt.Fprint(bw, "## Results:\n")

	for _, rec := range r.Results {
		b, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return errors.WithStackTraceAndPrefix(err, "encoding %s", rec.Path)
		}

		bw.WriteString("\n")
		for _, line := range strings.Split(string(b), "\n") {
			fmt.Fprintf(bw, "> %s\n", line)
		}
	}

	return errors.WithStackTrace(bw.Flush())
}

func inlineCode(s string) string {
	if !strings.Contains(s, "`") {
		return "`" + s + "`"
	}
	return "`` " + s + " ``"
}
