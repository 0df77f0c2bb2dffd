package column

import "testing"

func TestCreateColumn(t *testing.T) {
	tests := []struct {
		name    string
		colType Type
		want    string
	}{
		{name: "integer", colType: Integer, want: "'my_col' INTEGER"},
		{name: "text", colType: Text, want: "'my_col' TEXT"},
		{name: "blob", colType: Blob, want: "'my_col' BLOB"},
		{name: "float", colType: Float, want: "'my_col' REAL"},
		{name: "double", colType: Double, want: "'my_col' REAL"},
		{name: "datetime", colType: Datetime, want: "'my_col' DATETIME"},
		{name: "timestamp", colType: Timestamp, want: "'my_col' TIMESTAMP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.colType.CreateColumn("my_col"); got != tt.want {
				t.Errorf("CreateColumn() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreTableSQL(t *testing.T) {
	if got := Integer.PreTableSQL("posts", "author", FlagIndex); got != "" {
		t.Errorf("PreTableSQL() = %q, want empty", got)
	}
}

func TestPostTableSQL(t *testing.T) {
	tests := []struct {
		name  string
		flags int
		want  string
	}{
		{name: "no flags", flags: 0, want: ""},
		{
			name:  "index",
			flags: FlagIndex,
			want:  "CREATE INDEX posts_author ON posts ('author')",
		},
		{
			name:  "unique index",
			flags: FlagUniqueIndex,
			want:  "CREATE UNIQUE INDEX posts_author ON posts ('author')",
		},
		{
			name:  "unique index wins over index",
			flags: FlagIndex | FlagUniqueIndex,
			want:  "CREATE UNIQUE INDEX posts_author ON posts ('author')",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text.PostTableSQL("posts", "author", tt.flags); got != tt.want {
				t.Errorf("PostTableSQL() = %q, want %q", got, tt.want)
			}
		})
	}
}
