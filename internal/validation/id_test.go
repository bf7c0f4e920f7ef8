package validation

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  int64
		valid bool
	}{
		{
			name:  "positive",
			raw:   "42",
			want:  42,
			valid: true,
		},
		{
			name:  "negative",
			raw:   "-7",
			want:  -7,
			valid: true,
		},
		{
			name:  "surrounding spaces",
			raw:   " 15 ",
			valid: false,
		},
		{
			name:  "letters",
			raw:   "abc",
			valid: false,
		},
		{
			name:  "decimal",
			raw:   "1.5",
			valid: false,
		},
		{
			name:  "overflow",
			raw:   "9223372036854775808",
			valid: false,
		},
		{
			name:  "empty string",
			raw:   "",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if tt.valid {
				if err != nil {
					t.Fatalf("ParseID(%q) unexpected error: %v", tt.raw, err)
				}
				if got != tt.want {
					t.Fatalf("ParseID(%q) = %d, want %d", tt.raw, got, tt.want)
				}
				return
			}
			if err != ErrInvalidID {
				t.Fatalf("ParseID(%q) error = %v, want ErrInvalidID", tt.raw, err)
			}
		})
	}
}
