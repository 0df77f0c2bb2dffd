// Package script renders generated statement lists as executable SQL text.
package script

import (
	"fmt"
	"io"

	"github.com/recordkit/sqlgen"
)

// Writer renders the statements of registered records as a SQL script,
// one section per table.
type Writer struct {
	writer io.Writer
}

// NewWriter creates a script writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: w}
}

// WriteScript writes one section per registered table, in registration
// order, each statement terminated with a semicolon.
func (w *Writer) WriteScript(reg *sqlgen.Registry) error {
	for i, table := range reg.Tables() {
		if i > 0 {
			if _, err := fmt.Fprintln(w.writer); err != nil {
				return err
			}
		}
		stmts, _ := reg.Statements(table)
		if err := w.writeTable(table, stmts); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeTable(table string, statements []string) error {
	if _, err := fmt.Fprintf(w.writer, "-- %s\n", table); err != nil {
		return err
	}
	for _, stmt := range statements {
		if _, err := fmt.Fprintf(w.writer, "%s;\n", stmt); err != nil {
			return err
		}
	}
	return nil
}
