package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"medman/internal/errors"
)

// Preview renders the markdown document of r for a terminal. Without color the plain
// "notty" style is used.
func Preview(w io.Writer, r Report, color bool, width int) error {
	var doc strings.Builder
	if err := (Markdown{}).Write(&doc, r); err != nil {
		return err
	}

	style := glamour.WithStandardStyle("notty")
	if color {
		style = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return errors.WithStackTrace(err)
	}

	out, err := renderer.Render(doc.String())
	if err != nil {
		return errors.WithStackTrace(err)
	}

	_, err = fmt.Fprint(w, out)
	return errors.WithStackTrace(err)
}
