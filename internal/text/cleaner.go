package text

import (
	"regexp"
	"strings"
)

// urlPattern matches http/https URLs embedded in prose.
var urlPattern = regexp.MustCompile(`https?://[^\s）)\]】>"']+`)

// spokenURLPlaceholder replaces URLs, which are unreadable when
// narrated.
const spokenURLPlaceholder = "网址"

var (
	horizontalSpace = regexp.MustCompile(`[ \t]+`)
	dupPeriods      = regexp.MustCompile(`。+`)
	dupCommas       = regexp.MustCompile(`，+`)
)

// CleanForSpeech normalizes extracted document text for narration.
//
// The following transformations are applied:
//   - URLs are replaced with a spoken placeholder
//   - Runs of spaces and tabs collapse to a single space
//   - Bare newlines become sentence breaks so the TTS engine pauses
//     between paragraphs
//   - Runs of duplicate sentence terminators collapse to one
//   - Leading and trailing whitespace is removed
//
// Example:
//
//	CleanForSpeech("See https://example.com\nNext line")
//	// Returns "See 网址。Next line"
func CleanForSpeech(text string) string {
	text = urlPattern.ReplaceAllString(text, spokenURLPlaceholder)

	// Collapse horizontal whitespace, keep newlines for the break pass.
	text = horizontalSpace.ReplaceAllString(text, " ")

	// Newlines become sentence breaks. Lines that already end with a
	// terminator keep theirs; unterminated lines gain one so narration
	// pauses at the paragraph boundary.
	lines := strings.Split(text, "\n")
	var sb strings.Builder
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sb.WriteString(line)
		if !endsWithTerminator(line) {
			sb.WriteString("。")
		}
	}
	text = sb.String()

	// Remove duplicate terminators produced by the passes above.
	text = dupPeriods.ReplaceAllString(text, "。")
	text = dupCommas.ReplaceAllString(text, "，")

	return strings.TrimSpace(text)
}

// endsWithTerminator reports whether s ends with a sentence terminator.
func endsWithTerminator(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	return isSentenceEnd(runes[len(runes)-1])
}
