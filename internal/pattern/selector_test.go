package pattern

import (
	"strings"
	"testing"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantKind    SelectorKind
		wantIndices []int
		wantRegex   string
		wantErr     string
	}{
		{
			name:        "single index",
			text:        "2",
			wantKind:    SelectorIndices,
			wantIndices: []int{2},
		},
		{
			name:        "negative index",
			text:        "-2",
			wantKind:    SelectorIndices,
			wantIndices: []int{-2},
		},
		{
			name:        "last alias",
			text:        "l",
			wantKind:    SelectorIndices,
			wantIndices: []int{-1},
		},
		{
			name:        "index list",
			text:        "1,3",
			wantKind:    SelectorIndices,
			wantIndices: []int{1, 3},
		},
		{
			name:        "mixed list with alias",
			text:        "1,3,l",
			wantKind:    SelectorIndices,
			wantIndices: []int{1, 3, -1},
		},
		{
			name:        "duplicate indices allowed",
			text:        "2,2",
			wantKind:    SelectorIndices,
			wantIndices: []int{2, 2},
		},
		{
			name:        "whitespace around tokens",
			text:        " 1 , 3 ",
			wantKind:    SelectorIndices,
			wantIndices: []int{1, 3},
		},
		{
			name:     "all",
			text:     "a",
			wantKind: SelectorAll,
		},
		{
			name:      "regex",
			text:      "/ba+r/",
			wantKind:  SelectorRegex,
			wantRegex: "ba+r",
		},
		{
			name:    "empty",
			text:    "",
			wantErr: "empty selector",
		},
		{
			name:    "blank",
			text:    "   ",
			wantErr: "empty selector",
		},
		{
			name:    "zero index",
			text:    "0",
			wantErr: "1-based",
		},
		{
			name:    "non-numeric token",
			text:    "x",
			wantErr: "invalid token",
		},
		{
			name:    "all combined with index",
			text:    "a,1",
			wantErr: "cannot be combined",
		},
		{
			name:    "index combined with all",
			text:    "1,a",
			wantErr: "cannot be combined",
		},
		{
			name:    "regex combined with index",
			text:    "/x/,1",
			wantErr: "cannot be combined",
		},
		{
			name:    "bad regex",
			text:    "/(/",
			wantErr: "bad regex",
		},
		{
			name:    "lone slash is not a regex",
			text:    "/",
			wantErr: "invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseSelector(tt.text)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParseSelector(%q) expected error containing %q, got nil", tt.text, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("ParseSelector(%q) error = %v, want error containing %q", tt.text, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseSelector(%q) error = %v", tt.text, err)
			}
			if expr.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", expr.Kind, tt.wantKind)
			}
			if len(expr.Indices) != len(tt.wantIndices) {
				t.Fatalf("Indices = %v, want %v", expr.Indices, tt.wantIndices)
			}
			for i, want := range tt.wantIndices {
				if expr.Indices[i] != want {
					t.Errorf("Indices[%d] = %d, want %d", i, expr.Indices[i], want)
				}
			}
			if tt.wantRegex != "" {
				if expr.Regex == nil {
					t.Fatal("Regex = nil, want compiled expression")
				}
				if expr.Regex.String() != tt.wantRegex {
					t.Errorf("Regex = %q, want %q", expr.Regex.String(), tt.wantRegex)
				}
			}
		})
	}
}
