package sqlgen

import "github.com/recordkit/sqlgen/column"

// IDColumn is the well-known primary key column name shared with the host
// record framework. Foreign key columns reference it on the parent table.
const IDColumn = "_id"

// SupportsForeignKeys controls whether foreign key columns include a
// REFERENCES ... ON DELETE CASCADE clause. When false, for SQL engines
// without foreign key support, the column degrades to a plain INTEGER
// column that still loads the same data. Process-wide; set it once at
// startup, before any statements are generated.
var SupportsForeignKeys = true

// OnConflict selects the conflict resolution policy for a UNIQUE column.
// It is consulted only when the column is marked unique.
type OnConflict int

const (
	ConflictUnspecified OnConflict = iota
	ConflictRollback
	ConflictAbort
	ConflictFail
	ConflictIgnore
	ConflictReplace
)

// Token returns the SQL keyword for the policy, or "" for
// ConflictUnspecified.
func (c OnConflict) Token() string {
	switch c {
	case ConflictRollback:
		return "ROLLBACK"
	case ConflictAbort:
		return "ABORT"
	case ConflictFail:
		return "FAIL"
	case ConflictIgnore:
		return "IGNORE"
	case ConflictReplace:
		return "REPLACE"
	}
	return ""
}

// Collation selects the collation sequence for a column.
type Collation int

const (
	CollateDefault Collation = iota
	CollateBinary
	CollateNocase
	CollateRTrim
)

// Token returns the SQL collation name, or "" for CollateDefault.
func (c Collation) Token() string {
	switch c {
	case CollateBinary:
		return "BINARY"
	case CollateNocase:
		return "NOCASE"
	case CollateRTrim:
		return "RTRIM"
	}
	return ""
}

// Record describes one record type as an ordered list of field
// declarations. Records are defined once at startup and treated as
// immutable afterwards.
type Record struct {
	// Name is the record's type name. When Table is empty the table name
	// is derived from it by lowercasing and sanitizing.
	Name string

	// Table optionally overrides the derived table name. It must be a
	// valid unquoted SQL identifier.
	Table string

	// Fields lists the record's declared fields in declaration order.
	Fields []Field
}

// Field is one declared field of a record. At most one of Column and
// ForeignKey may be set; a field with neither contributes nothing to the
// generated table.
type Field struct {
	Column     *Column
	ForeignKey *ForeignKey
}

// Column describes an ordinary table column.
type Column struct {
	// Name is the SQL column name. It must be a valid unquoted identifier.
	Name string

	// Type renders the column's SQL type and any auxiliary statements.
	Type column.Type

	NotNull    bool
	PrimaryKey bool

	// AutoIncrement has an effect only when PrimaryKey is also set.
	AutoIncrement bool

	Unique bool

	// OnConflict is consulted only when Unique is set.
	OnConflict OnConflict

	Collate Collation

	// Default value slots. Only the highest-priority non-nil slot is used;
	// the priority is Default, DefaultInt, DefaultLong, DefaultFloat,
	// DefaultDouble, and lower-priority slots are silently ignored.
	// String defaults are quoted unless prefixed with
	// column.DefaultValueEscape; see that constant for the convention.
	Default       *string
	DefaultInt    *int
	DefaultLong   *int64
	DefaultFloat  *float32
	DefaultDouble *float64

	// ExtraDef is appended verbatim to the column definition. No escaping
	// is applied; the caller is responsible for its content.
	ExtraDef string

	// Flags is passed through to the column type's pre/post hooks.
	Flags int
}

// ForeignKey describes a column referencing the parent record's table by
// its IDColumn. The generated column is always an INTEGER.
type ForeignKey struct {
	// Name is the SQL column name. It must be a valid unquoted identifier.
	Name string

	NotNull bool

	// Parent is the referenced record. Its table name is resolved with the
	// same rules, and the same validation, as the child's.
	Parent *Record
}
