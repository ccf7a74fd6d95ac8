package output

import (
	"strings"
	"testing"
)

func TestVisualLen_PlainText(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"abc def", 7},
		{"✓", 1},
	}

	for _, tc := range tests {
		got := visualLen(tc.input)
		if got != tc.want {
			t.Errorf("visualLen(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestVisualLen_StripsANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "bold",
			input: "\x1b[1mhello\x1b[0m",
			want:  5,
		},
		{
			name:  "color",
			input: "\x1b[31mred\x1b[0m",
			want:  3,
		},
		{
			name:  "multiple sequences",
			input: "\x1b[1m\x1b[34mblue bold\x1b[0m",
			want:  9,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := visualLen(tc.input)
			if got != tc.want {
				t.Errorf("visualLen() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPadUsesVisualWidth(t *testing.T) {
	got := pad("\x1b[31mok\x1b[0m", 4)
	if visualLen(got) != 4 {
		t.Errorf("pad width = %d, want 4", visualLen(got))
	}
	if pad("toolong", 3) != "toolong" {
		t.Error("pad should not truncate")
	}
}

func TestTableRender(t *testing.T) {
	tbl := NewTable("Habit", "Streak")
	tbl.AddRow("Run", "3")
	tbl.AddRow("Meditate", "12", "ignored")
	tbl.AddRow("Read")

	if tbl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tbl.Len())
	}

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, separator and 3 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Habit") || !strings.Contains(lines[0], "Streak") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "Meditate  12") {
		t.Errorf("row = %q", lines[3])
	}
	if strings.Contains(tbl.String(), "ignored") {
		t.Error("extra values should be dropped")
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	if NewTable().Render() != "" {
		t.Error("table without headers should render empty")
	}
}

func TestMarkAndCount(t *testing.T) {
	if !strings.Contains(Mark(true), "✓") || !strings.Contains(Mark(false), "○") {
		t.Error("unexpected marks")
	}
	if !strings.Contains(Count(7), "7") {
		t.Error("count should contain the number")
	}
}
