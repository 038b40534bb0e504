package model

import (
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.mp3", "normal-file.mp3"},
		{"file:with:colons.mp3", "file_with_colons.mp3"},
		{"file<with>brackets.mp3", "file_with_brackets.mp3"},
		{"file/with\\slashes.mp3", "file_with_slashes.mp3"},
		{"file|with|pipes.mp3", "file_with_pipes.mp3"},
		{"file?with*wildcards.mp3", "file_with_wildcards.mp3"},
		{"file\"with\"quotes.mp3", "file_with_quotes.mp3"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path   string
		want   Format
		wantOK bool
	}{
		{"notes.md", FormatMarkdown, true},
		{"notes.MARKDOWN", FormatMarkdown, true},
		{"notes.txt", FormatText, true},
		{"book.epub", FormatEPUB, true},
		{"book.EPUB", FormatEPUB, true},
		{"song.mp3", 0, false},
		{"README", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := DetectFormat(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("DetectFormat(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDocument_PathComputation(t *testing.T) {
	cfg := &PathConfig{
		OutputDir:      "/audio",
		FileNameFormat: "{title}.mp3",
	}

	doc := NewDocument("/notes/Trip Report.md", "xiaoxiao", cfg)

	if doc.Title != "Trip Report" {
		t.Errorf("Title = %q, want %q", doc.Title, "Trip Report")
	}
	if doc.Format != FormatMarkdown {
		t.Errorf("Format = %v, want FormatMarkdown", doc.Format)
	}
	if doc.OutputPath != "/audio/Trip Report.mp3" {
		t.Errorf("OutputPath = %q, want %q", doc.OutputPath, "/audio/Trip Report.mp3")
	}
}

func TestDocument_VoicePlaceholder(t *testing.T) {
	cfg := &PathConfig{
		OutputDir:      "/audio",
		FileNameFormat: "{title} ({voice}).mp3",
	}

	doc := NewDocument("/notes/Report.md", "xiaoyi", cfg)

	if doc.OutputPath != "/audio/Report (xiaoyi).mp3" {
		t.Errorf("OutputPath = %q, want %q", doc.OutputPath, "/audio/Report (xiaoyi).mp3")
	}
}

func TestDocument_SanitizedTitle(t *testing.T) {
	cfg := &PathConfig{
		OutputDir:      "/audio",
		FileNameFormat: "{title}.mp3",
	}

	doc := NewDocument("/notes/Q&A: Part 1?2.md", "xiaoxiao", cfg)

	if doc.OutputPath != "/audio/Q&A_ Part 1_2.mp3" {
		t.Errorf("OutputPath = %q, want sanitized filename", doc.OutputPath)
	}
}

func TestDocument_Parts(t *testing.T) {
	cfg := &PathConfig{
		OutputDir:      "/audio",
		FileNameFormat: "{title}.mp3",
	}
	doc := NewDocument("/notes/Book.md", "xiaoxiao", cfg)

	if got := doc.PartTitle(1, 1); got != "Book" {
		t.Errorf("single part title = %q, want %q", got, "Book")
	}
	if got := doc.PartPath(1, 1); got != "/audio/Book.mp3" {
		t.Errorf("single part path = %q, want %q", got, "/audio/Book.mp3")
	}
	if got := doc.PartTitle(2, 3); got != "Book (Part 2)" {
		t.Errorf("part title = %q, want %q", got, "Book (Part 2)")
	}
	if got := doc.PartPath(2, 3); got != "/audio/Book (Part 2).mp3" {
		t.Errorf("part path = %q, want %q", got, "/audio/Book (Part 2).mp3")
	}
}
