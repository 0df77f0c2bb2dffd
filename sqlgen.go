// Package sqlgen compiles declarative record descriptions into the SQLite
// DDL statements that materialize them as tables.
//
// A record is described as an ordered list of field declarations, each
// carrying either column metadata or a foreign key reference to another
// record. From one record sqlgen produces a CREATE TABLE statement plus any
// auxiliary statements contributed by the column types (index creation, for
// example), in a fixed order: pre statements, CREATE TABLE, post statements.
//
// # Quick Start
//
//	post := &sqlgen.Record{
//		Name: "BlogPost",
//		Fields: []sqlgen.Field{
//			{Column: &sqlgen.Column{Name: "_id", Type: column.Integer, PrimaryKey: true, AutoIncrement: true}},
//			{Column: &sqlgen.Column{Name: "title", Type: column.Text, NotNull: true}},
//			{Column: &sqlgen.Column{Name: "created", Type: column.Timestamp, Default: sqlgen.Raw("CURRENT_TIMESTAMP")}},
//		},
//	}
//
//	statements, err := sqlgen.TableStatements(post)
//
// The statements are plain SQL text; executing them is the caller's
// business, typically inside one schema creation transaction. Apply is a
// small helper that does exactly that against a database/sql handle.
//
// # Registries
//
// Applications with several record types register them in a Registry,
// which validates each record once and caches its statements:
//
//	reg := sqlgen.NewRegistry()
//	if err := reg.RegisterAll(records); err != nil {
//		log.Fatal(err)
//	}
//	err := sqlgen.Apply(ctx, db, reg.AllStatements())
//
// # Validation
//
// Table and column names must be legal unquoted SQL identifiers; a record
// may also omit its table name, in which case one is derived from the
// record's type name. Declaration defects are reported as
// ErrInvalidIdentifier or ErrInvalidColumnBinding, and any failure while
// assembling a table's statements aborts generation for that record with a
// *SchemaError. All errors are deterministic functions of the
// declarations.
package sqlgen

// TableStatements generates the DDL statements for a single record. It is
// shorthand for constructing an Extractor and calling its TableStatements
// method.
func TableStatements(rec *Record) ([]string, error) {
	e, err := NewExtractor(rec)
	if err != nil {
		return nil, err
	}
	return e.TableStatements()
}

// ResolveTableName resolves the table name for a record, explicit or
// derived, without generating any statements.
func ResolveTableName(rec *Record) (string, error) {
	return tableName(rec)
}

// String returns a pointer to v, for filling a column's Default slot
// inline.
func String(v string) *string { return &v }

// Raw returns a string default that is emitted as raw SQL rather than a
// quoted literal, e.g. Raw("CURRENT_TIMESTAMP").
func Raw(v string) *string {
	raw := rawEscape + v
	return &raw
}

// Int returns a pointer to v, for filling a column's DefaultInt slot
// inline.
func Int(v int) *int { return &v }

// Long returns a pointer to v, for filling a column's DefaultLong slot
// inline.
func Long(v int64) *int64 { return &v }

// Float returns a pointer to v, for filling a column's DefaultFloat slot
// inline.
func Float(v float32) *float32 { return &v }

// Double returns a pointer to v, for filling a column's DefaultDouble slot
// inline.
func Double(v float64) *float64 { return &v }
