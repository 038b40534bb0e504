package text

import (
	"strings"
	"testing"
)

func TestCleanForSpeech(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Hello world.", "Hello world."},
		{"url replaced", "See https://example.com/page for details.", "See 网址 for details."},
		{"whitespace collapsed", "too   many\tspaces.", "too many spaces."},
		{"newline becomes break", "First line\nSecond line", "First line。Second line。"},
		{"terminated line keeps its end", "Done.\nNext", "Done.Next。"},
		{"blank lines dropped", "a。\n\n\nb。", "a。b。"},
		{"duplicate terminators collapsed", "wait。。。what", "wait。what。"},
		{"trimmed", "  padded。  ", "padded。"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanForSpeech(tt.input); got != tt.want {
				t.Errorf("CleanForSpeech(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanForSpeech_OutputIsChunkable(t *testing.T) {
	input := "# Heading leftovers\nParagraph with https://a.example/x link\nAnother paragraph"
	cleaned := CleanForSpeech(input)

	chunks := SplitIntoChunks(cleaned, 30)
	if strings.Join(chunks, "") != cleaned {
		t.Error("cleaned text must survive chunking unchanged")
	}
}
