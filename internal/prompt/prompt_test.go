package prompt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		n       int
		want    int
		wantErr bool
	}{
		{"first", "1", 4, 0, false},
		{"last", "4", 4, 3, false},
		{"whitespace", "  2 ", 4, 1, false},
		{"zero", "0", 4, 0, true},
		{"too large", "5", 4, 0, true},
		{"not a number", "abc", 4, 0, true},
		{"empty", "", 4, 0, true},
		{"negative", "-1", 4, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChoice(tt.line, tt.n)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseChoice(%q, %d) succeeded, want error", tt.line, tt.n)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChoice(%q, %d) failed: %v", tt.line, tt.n, err)
			}
			if got != tt.want {
				t.Errorf("ParseChoice(%q, %d) = %d, want %d", tt.line, tt.n, got, tt.want)
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "dp", []string{"dp"}},
		{"trimmed", " dp , graphs ", []string{"dp", "graphs"}},
		{"duplicates preserved", "dp,dp", []string{"dp", "dp"}},
		{"empty segments dropped", "dp,,graphs,", []string{"dp", "graphs"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ParseTags(tt.line)); diff != "" {
				t.Errorf("ParseTags(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}
