package main

import "testing"

func TestEnvDefault(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		envValue string
		want     string
	}{
		{
			name:     "flag value wins",
			value:    "schema.yaml",
			envValue: "other.yaml",
			want:     "schema.yaml",
		},
		{
			name:     "env fills empty value",
			value:    "",
			envValue: "other.yaml",
			want:     "other.yaml",
		},
		{
			name:  "both empty",
			value: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SQLGEN_TEST_VAR", tt.envValue)
			if got := envDefault(tt.value, "SQLGEN_TEST_VAR"); got != tt.want {
				t.Errorf("envDefault(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
