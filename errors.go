package sqlgen

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentifier reports a table or column name that is not a legal
// unquoted SQL identifier.
var ErrInvalidIdentifier = errors.New("invalid SQL identifier")

// ErrInvalidColumnBinding reports a field whose declared metadata does not
// form a usable column: a missing name, a missing column type or parent
// record, or a field declared as both a column and a foreign key.
var ErrInvalidColumnBinding = errors.New("invalid column binding")

// SchemaError wraps the first failure encountered while generating the
// statements for one record's table. Generation is all or nothing: no
// statements are produced for a record whose generation fails, and
// regenerating from the same declarations reproduces the same error.
type SchemaError struct {
	Table string
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("generating schema for table %q: %v", e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
