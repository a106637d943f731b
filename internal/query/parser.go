package query

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Clause is a single field:value unit of a query.
type Clause struct {
	Field Field
	// Key is the field token as written, kept to name unrecognized fields in diagnostics.
	Key   string
	Value string
}

// NewClause returns a clause for a recognized field.
func NewClause(f Field, value string) Clause {
	return Clause{Field: f, Key: f.String(), Value: value}
}

func (c Clause) String() string {
	return c.Key + ":" + c.Value
}

// Parse splits input into clauses. Tokens without a ':' are reported and skipped. Only the text
// between the first and second ':' is kept as the value.
func (e *Engine) Parse(input string) []Clause {
	var clauses []Clause

	for _, token := range strings.Fields(input) {
		parts := strings.Split(token, ":")
		if len(parts) < 2 {
			e.log.WithFields(logrus.Fields{
				"clause": token,
				"query":  input,
			}).Warn("Skipping malformed clause: expected field:value")

			continue
		}

		clauses = append(clauses, Clause{
			Field: ParseField(parts[0]),
			Key:   parts[0],
			Value: parts[1],
		})
	}

	return clauses
}
