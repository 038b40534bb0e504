package markdown

import (
	"strings"
	"testing"
)

func TestToText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain paragraph", "Just a sentence.", "Just a sentence."},
		{"heading", "# Title\n\nBody text.", "Title\nBody text."},
		{"bold and italic stripped", "This is **bold** and *italic*.", "This is bold and italic."},
		{"link keeps label", "See [the docs](https://example.com/docs).", "See the docs."},
		{"image dropped", "Before ![alt text](img.png) after.", "Before  after."},
		{"list items", "- first\n- second\n", "first\nsecond"},
		{"ordered list", "1. one\n2. two\n", "one\ntwo"},
		{"blockquote", "> quoted words\n", "quoted words"},
		{"soft break becomes space", "line one\nline two", "line one line two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToText(tt.input); got != tt.want {
				t.Errorf("ToText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToText_CodeDropped(t *testing.T) {
	input := "Before.\n\n```go\nfunc main() {}\n```\n\nAfter with `inline` code."
	got := ToText(input)

	if strings.Contains(got, "func main") {
		t.Errorf("fenced code leaked into output: %q", got)
	}
	if strings.Contains(got, "inline") {
		t.Errorf("inline code leaked into output: %q", got)
	}
	if !strings.Contains(got, "Before.") || !strings.Contains(got, "After with") {
		t.Errorf("surrounding prose missing: %q", got)
	}
}

func TestToText_AutoLinkKept(t *testing.T) {
	// Bare URLs survive extraction; the text cleaner downstream turns
	// them into a spoken placeholder.
	got := ToText("Visit https://example.com today.")
	if !strings.Contains(got, "https://example.com") {
		t.Errorf("autolink URL missing from output: %q", got)
	}
}

func TestToText_Table(t *testing.T) {
	input := "| Name | Role |\n| --- | --- |\n| Ada | Engineer |\n"
	got := ToText(input)

	for _, cell := range []string{"Name", "Role", "Ada", "Engineer"} {
		if !strings.Contains(got, cell) {
			t.Errorf("table cell %q missing from output: %q", cell, got)
		}
	}
	if strings.Contains(got, "|") {
		t.Errorf("table syntax leaked into output: %q", got)
	}
}
