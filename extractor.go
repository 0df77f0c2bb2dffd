package sqlgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/recordkit/sqlgen/column"
	"github.com/recordkit/sqlgen/internal/sqlname"
)

// Extractor generates the DDL statements for a single record type. It is
// immutable after construction and safe for concurrent use; generation
// consults only the record's declarations.
type Extractor struct {
	record *Record
	table  string
}

// NewExtractor binds an extractor to one record. An explicit table name is
// validated here; when no explicit name is given one is derived from the
// record's type name.
func NewExtractor(rec *Record) (*Extractor, error) {
	table, err := tableName(rec)
	if err != nil {
		return nil, err
	}
	return &Extractor{record: rec, table: table}, nil
}

func tableName(rec *Record) (string, error) {
	if rec.Table != "" {
		if !sqlname.IsValid(rec.Table) {
			return "", fmt.Errorf("illegal table name %q: %w", rec.Table, ErrInvalidIdentifier)
		}
		return rec.Table, nil
	}
	return sqlname.Derive(rec.Name), nil
}

// TableName returns the resolved table name.
func (e *Extractor) TableName() string {
	return e.table
}

// ColumnName returns the validated SQL column name declared by f.
func (e *Extractor) ColumnName(f Field) (string, error) {
	var name string
	switch {
	case f.Column != nil && f.ForeignKey != nil:
		return "", fmt.Errorf("field declares both a column and a foreign key: %w", ErrInvalidColumnBinding)
	case f.Column != nil:
		name = f.Column.Name
	case f.ForeignKey != nil:
		name = f.ForeignKey.Name
	default:
		return "", fmt.Errorf("field declares no column metadata: %w", ErrInvalidColumnBinding)
	}
	if name == "" {
		return "", fmt.Errorf("field declares no column name: %w", ErrInvalidColumnBinding)
	}
	if !sqlname.IsValid(name) {
		return "", fmt.Errorf("%q is not a valid column name: %w", name, ErrInvalidIdentifier)
	}
	return name, nil
}

// ColumnType returns the column type declared by f, or nil when f carries
// no ordinary column metadata.
func (e *Extractor) ColumnType(f Field) (column.Type, error) {
	if f.Column == nil {
		return nil, nil
	}
	if f.ForeignKey != nil {
		return nil, fmt.Errorf("field declares both a column and a foreign key: %w", ErrInvalidColumnBinding)
	}
	if f.Column.Type == nil {
		return nil, fmt.Errorf("column %q declares no column type: %w", f.Column.Name, ErrInvalidColumnBinding)
	}
	return f.Column.Type, nil
}

// TableStatements generates the ordered statements that materialize the
// record's table: pre statements, the CREATE TABLE statement, then post
// statements, with pre and post statements in column declaration order.
// Generation is all or nothing; on failure no statements are returned and
// the error wraps the first underlying cause in a *SchemaError.
func (e *Extractor) TableStatements() ([]string, error) {
	var (
		pre  []string
		post []string
		b    strings.Builder
	)

	b.WriteString("CREATE TABLE ")
	b.WriteString(e.table)
	b.WriteString(" (")

	needSep := false
	for _, f := range e.record.Fields {
		if f.Column == nil && f.ForeignKey == nil {
			continue
		}

		name, err := e.ColumnName(f)
		if err != nil {
			return nil, &SchemaError{Table: e.table, Err: err}
		}

		if needSep {
			b.WriteByte(',')
		}

		if f.Column != nil {
			err = e.appendColumnDef(&b, f.Column, name, &pre, &post)
		} else {
			err = e.appendForeignKeyDef(&b, f.ForeignKey, name)
		}
		if err != nil {
			return nil, &SchemaError{Table: e.table, Err: err}
		}

		needSep = true
	}
	b.WriteByte(')')

	statements := make([]string, 0, len(pre)+1+len(post))
	statements = append(statements, pre...)
	statements = append(statements, b.String())
	statements = append(statements, post...)
	return statements, nil
}

func (e *Extractor) appendColumnDef(b *strings.Builder, col *Column, name string, pre, post *[]string) error {
	if col.Type == nil {
		return fmt.Errorf("column %q declares no column type: %w", name, ErrInvalidColumnBinding)
	}

	b.WriteString(col.Type.CreateColumn(name))

	if col.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
		if col.AutoIncrement {
			b.WriteString(" AUTOINCREMENT")
		}
	}

	if col.Unique {
		b.WriteString(" UNIQUE")
		if token := col.OnConflict.Token(); token != "" {
			b.WriteString(" ON CONFLICT ")
			b.WriteString(token)
		}
	}

	if col.NotNull {
		b.WriteString(" NOT NULL")
	}

	if token := col.Collate.Token(); token != "" {
		b.WriteString(" COLLATE ")
		b.WriteString(token)
	}

	appendDefault(b, col)

	if col.ExtraDef != "" {
		b.WriteString(col.ExtraDef)
	}

	if s := col.Type.PreTableSQL(e.table, name, col.Flags); s != "" {
		*pre = append(*pre, s)
	}
	if s := col.Type.PostTableSQL(e.table, name, col.Flags); s != "" {
		*post = append(*post, s)
	}
	return nil
}

const (
	rawEscape    = column.DefaultValueEscape
	doubleEscape = column.DefaultValueEscape + column.DefaultValueEscape
)

// appendDefault renders the DEFAULT clause from the highest-priority
// default slot that is set; lower-priority slots are ignored.
func appendDefault(b *strings.Builder, col *Column) {
	switch {
	case col.Default != nil:
		v := *col.Default
		b.WriteString(" DEFAULT ")
		switch {
		case strings.HasPrefix(v, doubleEscape):
			// doubled escape: a quoted literal starting with the marker
			b.WriteString(sqlname.QuoteLiteral(v[len(rawEscape):]))
		case strings.HasPrefix(v, rawEscape):
			// single escape: raw SQL, emitted unescaped
			b.WriteString(v[len(rawEscape):])
		default:
			b.WriteString(sqlname.QuoteLiteral(v))
		}
	case col.DefaultInt != nil:
		b.WriteString(" DEFAULT ")
		b.WriteString(strconv.Itoa(*col.DefaultInt))
	case col.DefaultLong != nil:
		b.WriteString(" DEFAULT ")
		b.WriteString(strconv.FormatInt(*col.DefaultLong, 10))
	case col.DefaultFloat != nil:
		b.WriteString(" DEFAULT ")
		b.WriteString(strconv.FormatFloat(float64(*col.DefaultFloat), 'g', -1, 32))
	case col.DefaultDouble != nil:
		b.WriteString(" DEFAULT ")
		b.WriteString(strconv.FormatFloat(*col.DefaultDouble, 'g', -1, 64))
	}
}

func (e *Extractor) appendForeignKeyDef(b *strings.Builder, fk *ForeignKey, name string) error {
	if fk.Parent == nil {
		return fmt.Errorf("foreign key %q declares no parent record: %w", name, ErrInvalidColumnBinding)
	}

	b.WriteString("'")
	b.WriteString(name)
	b.WriteString("' INTEGER")
	if fk.NotNull {
		b.WriteString(" NOT NULL")
	}

	if !SupportsForeignKeys {
		return nil
	}

	parent, err := tableName(fk.Parent)
	if err != nil {
		return err
	}

	b.WriteString(" REFERENCES '")
	b.WriteString(parent)
	b.WriteString("' (")
	b.WriteString(IDColumn)
	b.WriteString(") ON DELETE CASCADE")
	return nil
}
