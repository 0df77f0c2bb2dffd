// Package column defines the column types available to sqlgen records.
//
// A column type knows how to render the opening fragment of a column
// definition (the quoted column name plus its SQL type token) and may
// contribute auxiliary statements that run before or after the CREATE TABLE
// statement, such as index creation. The built-in types cover the SQLite
// storage classes; custom types can be supplied by implementing Type.
package column

// DefaultValueEscape is the escape marker for string default values.
// Prefixing a default with it once emits the remainder as raw SQL (for
// defaults like CURRENT_TIMESTAMP); prefixing it twice emits a quoted
// literal that itself begins with the marker.
const DefaultValueEscape = "!"

// Flags understood by the built-in column types. Flag values are otherwise
// opaque to sqlgen and are passed through to the column type unchanged.
const (
	// FlagIndex asks for a CREATE INDEX post statement on the column.
	FlagIndex = 1 << iota
	// FlagUniqueIndex asks for a CREATE UNIQUE INDEX post statement.
	FlagUniqueIndex
)

// Type renders the SQL fragments for one kind of column. PreTableSQL and
// PostTableSQL return an empty string when the type has no auxiliary
// statement for the given column. Implementations must be stateless.
type Type interface {
	// CreateColumn returns the start of the column definition, e.g.
	// "'my_col' INTEGER".
	CreateColumn(name string) string

	// PreTableSQL returns a statement to run before CREATE TABLE, or "".
	PreTableSQL(table, name string, flags int) string

	// PostTableSQL returns a statement to run after CREATE TABLE, or "".
	PostTableSQL(table, name string, flags int) string
}

// The built-in column types.
var (
	Integer   Type = sqlType{"INTEGER"}
	Text      Type = sqlType{"TEXT"}
	Blob      Type = sqlType{"BLOB"}
	Float     Type = sqlType{"REAL"}
	Double    Type = sqlType{"REAL"}
	Datetime  Type = sqlType{"DATETIME"}
	Timestamp Type = sqlType{"TIMESTAMP"}
)

type sqlType struct {
	token string
}

func (t sqlType) CreateColumn(name string) string {
	return "'" + name + "' " + t.token
}

func (t sqlType) PreTableSQL(table, name string, flags int) string {
	return ""
}

func (t sqlType) PostTableSQL(table, name string, flags int) string {
	switch {
	case flags&FlagUniqueIndex != 0:
		return "CREATE UNIQUE INDEX " + table + "_" + name + " ON " + table + " ('" + name + "')"
	case flags&FlagIndex != 0:
		return "CREATE INDEX " + table + "_" + name + " ON " + table + " ('" + name + "')"
	}
	return ""
}
