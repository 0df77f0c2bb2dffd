// Package manifest loads record declarations from YAML manifests.
//
// A manifest declares records and their fields as data, so schemas can be
// defined outside Go code:
//
//	records:
//	  - name: Author
//	    table: authors
//	    fields:
//	      - name: _id
//	        type: integer
//	        primary_key: true
//	        auto_increment: true
//	      - name: email
//	        type: text
//	        not_null: true
//	        unique: true
//	        on_conflict: replace
//	  - name: BlogPost
//	    fields:
//	      - name: _id
//	        type: integer
//	        primary_key: true
//	        auto_increment: true
//	      - name: created
//	        type: timestamp
//	        default: "!CURRENT_TIMESTAMP"
//	      - name: author
//	        references: Author
//	        not_null: true
//
// Foreign key references name another record declared in the same
// manifest. Records are returned in declaration order.
package manifest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/recordkit/sqlgen"
	"github.com/recordkit/sqlgen/column"
)

type manifestFile struct {
	Records []recordDecl `yaml:"records"`
}

type recordDecl struct {
	Name   string      `yaml:"name"`
	Table  string      `yaml:"table"`
	Fields []fieldDecl `yaml:"fields"`
}

type fieldDecl struct {
	Name          string   `yaml:"name"`
	Type          string   `yaml:"type"`
	References    string   `yaml:"references"`
	NotNull       bool     `yaml:"not_null"`
	PrimaryKey    bool     `yaml:"primary_key"`
	AutoIncrement bool     `yaml:"auto_increment"`
	Unique        bool     `yaml:"unique"`
	OnConflict    string   `yaml:"on_conflict"`
	Collate       string   `yaml:"collate"`
	Default       *string  `yaml:"default"`
	DefaultInt    *int     `yaml:"default_int"`
	DefaultLong   *int64   `yaml:"default_long"`
	DefaultFloat  *float32 `yaml:"default_float"`
	DefaultDouble *float64 `yaml:"default_double"`
	Index         bool     `yaml:"index"`
	UniqueIndex   bool     `yaml:"unique_index"`
	Extra         string   `yaml:"extra"`
}

var columnTypes = map[string]column.Type{
	"integer":   column.Integer,
	"text":      column.Text,
	"blob":      column.Blob,
	"float":     column.Float,
	"double":    column.Double,
	"datetime":  column.Datetime,
	"timestamp": column.Timestamp,
}

var conflictPolicies = map[string]sqlgen.OnConflict{
	"":         sqlgen.ConflictUnspecified,
	"rollback": sqlgen.ConflictRollback,
	"abort":    sqlgen.ConflictAbort,
	"fail":     sqlgen.ConflictFail,
	"ignore":   sqlgen.ConflictIgnore,
	"replace":  sqlgen.ConflictReplace,
}

var collations = map[string]sqlgen.Collation{
	"":       sqlgen.CollateDefault,
	"binary": sqlgen.CollateBinary,
	"nocase": sqlgen.CollateNocase,
	"rtrim":  sqlgen.CollateRTrim,
}

// Load parses a YAML manifest into record declarations. Unknown manifest
// keys are rejected.
func Load(r io.Reader) ([]*sqlgen.Record, error) {
	var file manifestFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(file.Records) == 0 {
		return nil, fmt.Errorf("manifest declares no records")
	}

	// First pass: create the records so foreign keys can reference them
	// regardless of declaration order.
	records := make([]*sqlgen.Record, len(file.Records))
	byName := make(map[string]*sqlgen.Record, len(file.Records))
	for i, decl := range file.Records {
		if decl.Name == "" {
			return nil, fmt.Errorf("record %d: missing name", i)
		}
		if _, ok := byName[decl.Name]; ok {
			return nil, fmt.Errorf("record %q declared twice", decl.Name)
		}
		rec := &sqlgen.Record{Name: decl.Name, Table: decl.Table}
		records[i] = rec
		byName[decl.Name] = rec
	}

	// Second pass: build the fields.
	for i, decl := range file.Records {
		for _, fd := range decl.Fields {
			field, err := buildField(fd, byName)
			if err != nil {
				return nil, fmt.Errorf("record %q: %w", decl.Name, err)
			}
			records[i].Fields = append(records[i].Fields, field)
		}
	}

	return records, nil
}

// LoadFile parses the YAML manifest at path.
func LoadFile(path string) ([]*sqlgen.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func buildField(fd fieldDecl, byName map[string]*sqlgen.Record) (sqlgen.Field, error) {
	if fd.References != "" {
		if fd.Type != "" {
			return sqlgen.Field{}, fmt.Errorf("field %q: cannot set both type and references", fd.Name)
		}
		parent, ok := byName[fd.References]
		if !ok {
			return sqlgen.Field{}, fmt.Errorf("field %q references unknown record %q", fd.Name, fd.References)
		}
		return sqlgen.Field{ForeignKey: &sqlgen.ForeignKey{
			Name:    fd.Name,
			NotNull: fd.NotNull,
			Parent:  parent,
		}}, nil
	}

	colType, ok := columnTypes[fd.Type]
	if !ok {
		return sqlgen.Field{}, fmt.Errorf("field %q: unknown column type %q", fd.Name, fd.Type)
	}
	onConflict, ok := conflictPolicies[fd.OnConflict]
	if !ok {
		return sqlgen.Field{}, fmt.Errorf("field %q: unknown conflict policy %q", fd.Name, fd.OnConflict)
	}
	collate, ok := collations[fd.Collate]
	if !ok {
		return sqlgen.Field{}, fmt.Errorf("field %q: unknown collation %q", fd.Name, fd.Collate)
	}

	flags := 0
	if fd.Index {
		flags |= column.FlagIndex
	}
	if fd.UniqueIndex {
		flags |= column.FlagUniqueIndex
	}

	return sqlgen.Field{Column: &sqlgen.Column{
		Name:          fd.Name,
		Type:          colType,
		NotNull:       fd.NotNull,
		PrimaryKey:    fd.PrimaryKey,
		AutoIncrement: fd.AutoIncrement,
		Unique:        fd.Unique,
		OnConflict:    onConflict,
		Collate:       collate,
		Default:       fd.Default,
		DefaultInt:    fd.DefaultInt,
		DefaultLong:   fd.DefaultLong,
		DefaultFloat:  fd.DefaultFloat,
		DefaultDouble: fd.DefaultDouble,
		ExtraDef:      fd.Extra,
		Flags:         flags,
	}}, nil
}
