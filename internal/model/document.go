package model

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Format identifies the source document type.
type Format int

const (
	// FormatMarkdown covers .md and .markdown files.
	FormatMarkdown Format = iota

	// FormatText covers plain .txt files, narrated verbatim.
	FormatText

	// FormatEPUB covers .epub e-books.
	FormatEPUB
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatText:
		return "text"
	case FormatEPUB:
		return "epub"
	default:
		return "unknown"
	}
}

// DetectFormat maps a file extension to a Format. The second return
// value is false for unsupported extensions.
func DetectFormat(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown, true
	case ".txt":
		return FormatText, true
	case ".epub":
		return FormatEPUB, true
	default:
		return 0, false
	}
}

// PathConfig holds output path formatting settings.
//
// FileNameFormat supports placeholders replaced with actual values:
//   - {title} - Document title (source filename without extension)
//   - {voice} - Voice name used for synthesis
//
// Example:
//
//	cfg := &model.PathConfig{
//	    OutputDir:      "/audio",
//	    FileNameFormat: "{title}.mp3",
//	}
type PathConfig struct {
	// OutputDir is the directory where generated MP3 files are written.
	OutputDir string

	// FileNameFormat is the template for output filenames. Must include
	// the file extension (typically ".mp3").
	FileNameFormat string
}

// Document represents one source document queued for narration.
//
// The output path is computed when creating a document via NewDocument,
// using the PathConfig filename format. Invalid filename characters are
// replaced with underscores and overlong paths are clamped for Windows
// compatibility.
//
// Example:
//
//	cfg := &model.PathConfig{OutputDir: "/audio", FileNameFormat: "{title}.mp3"}
//	doc := model.NewDocument("/notes/Trip Report.md", "xiaoxiao", cfg)
//	// doc.Title = "Trip Report"
//	// doc.OutputPath = "/audio/Trip Report.mp3"
type Document struct {
	// SourcePath is the path to the input file.
	SourcePath string

	// Title is the narration title, derived from the source filename
	// without its extension.
	Title string

	// Format is the detected source format.
	Format Format

	// Voice is the synthesis voice name, available as a filename
	// placeholder.
	Voice string

	// OutputPath is the computed path of the generated MP3.
	OutputPath string
}

// NewDocument creates a Document for a source file, computing its
// title and output path. The source extension determines the Format;
// unsupported extensions fall back to FormatText.
func NewDocument(sourcePath, voice string, cfg *PathConfig) *Document {
	format, ok := DetectFormat(sourcePath)
	if !ok {
		format = FormatText
	}

	base := filepath.Base(sourcePath)
	title := strings.TrimSuffix(base, filepath.Ext(base))

	doc := &Document{
		SourcePath: sourcePath,
		Title:      title,
		Format:     format,
		Voice:      voice,
	}
	doc.OutputPath = doc.parseOutputPath(cfg)

	return doc
}

// PartTitle returns the narration title for part n (1-indexed) when a
// long document is split into multiple output files. A single-part
// document keeps the plain title.
func (d *Document) PartTitle(n, total int) string {
	if total <= 1 {
		return d.Title
	}
	return fmt.Sprintf("%s (Part %d)", d.Title, n)
}

// PartPath returns the output path for part n (1-indexed). A
// single-part document keeps the plain output path.
func (d *Document) PartPath(n, total int) string {
	if total <= 1 {
		return d.OutputPath
	}
	ext := filepath.Ext(d.OutputPath)
	return strings.TrimSuffix(d.OutputPath, ext) + fmt.Sprintf(" (Part %d)", n) + ext
}

// parseOutputPath computes the full output file path for this document.
func (d *Document) parseOutputPath(cfg *PathConfig) string {
	fileName := cfg.FileNameFormat
	fileName = strings.ReplaceAll(fileName, "{title}", d.Title)
	fileName = strings.ReplaceAll(fileName, "{voice}", d.Voice)
	fileName = sanitizeFileName(fileName)

	filePath := filepath.Join(cfg.OutputDir, fileName)

	// Limit total path length for Windows compatibility (MAX_PATH = 260)
	if len(filePath) >= 260 {
		ext := filepath.Ext(filePath)
		maxLen := 11 - len(ext)
		if maxLen > 0 && maxLen < len(fileName) {
			filePath = filepath.Join(cfg.OutputDir, fileName[:maxLen]+ext)
		}
	}

	return filePath
}

// sanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
func sanitizeFileName(name string) string {
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")
	name = strings.TrimRight(name, " ")

	return name
}
