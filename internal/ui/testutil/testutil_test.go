package testutil

import (
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no ansi codes",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "with color codes",
			input: "\x1b[31mred\x1b[0m text",
			want:  "red text",
		},
		{
			name:  "with graphics command",
			input: "a\x1b_Ga=p,i=1;\x1b\\b",
			want:  "ab",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[1mab●\x1b[0m"); got != 3 {
		t.Errorf("MeasureWidth() = %d, want 3", got)
	}
}

func TestFindLine(t *testing.T) {
	output := "first\nsecond line\nthird"

	if got := FindLine(output, "second"); got != "second line" {
		t.Errorf("FindLine() = %q", got)
	}
	if got := FindLine(output, "missing"); got != "" {
		t.Errorf("FindLine() = %q, want empty", got)
	}
	if !ContainsLine(output, "third") {
		t.Error("ContainsLine() = false, want true")
	}
	if got := LineIndex(output, "third"); got != 2 {
		t.Errorf("LineIndex() = %d, want 2", got)
	}
	if got := LineIndex(output, "x"); got != -1 {
		t.Errorf("LineIndex() = %d, want -1", got)
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\n\n  \n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SplitLines() = %q", got)
	}
}
