package text

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxChunkLength is the default maximum chunk length in characters.
// It sits just under the per-request character cap of the edge-tts backend.
const DefaultMaxChunkLength = 4900

// SplitIntoChunks splits text into ordered chunks suitable for a TTS
// engine with a per-request size limit.
//
// The text is first split into sentences at sentence-ending punctuation
// (both ASCII and full-width variants: 。！？!?.), with the terminator
// kept at the end of its sentence. Sentences are then packed greedily
// into chunks of at most maxLength characters. A single sentence longer
// than maxLength is never split; it is emitted as its own oversized
// chunk.
//
// Lengths are counted in characters (runes), not bytes, since TTS
// request limits are character based.
//
// Properties:
//   - Concatenating the returned chunks reproduces text exactly.
//   - Empty input returns nil.
//   - Input without any sentence-ending punctuation is returned as a
//     single chunk.
//
// Example:
//
//	chunks := text.SplitIntoChunks(document, text.DefaultMaxChunkLength)
//	for _, chunk := range chunks {
//	    audio, err := engine.Synthesize(ctx, chunk)
//	    ...
//	}
func SplitIntoChunks(text string, maxLength int) []string {
	if text == "" {
		return nil
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxChunkLength
	}

	sentences := splitSentences(text)

	var chunks []string
	var current strings.Builder
	currentLen := 0

	for _, sentence := range sentences {
		sentenceLen := utf8.RuneCountInString(sentence)

		// Strict < keeps a one-character margin below the limit; kept
		// as-is so chunk boundaries stay stable for existing callers.
		if currentLen+sentenceLen < maxLength {
			current.WriteString(sentence)
			currentLen += sentenceLen
			continue
		}

		if current.Len() > 0 {
			chunks = append(chunks, current.String())
		}
		current.Reset()
		current.WriteString(sentence)
		currentLen = sentenceLen
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	if len(chunks) == 0 {
		return []string{text}
	}
	return chunks
}

// splitSentences splits text into sentences, keeping each terminator at
// the end of its sentence. Trailing unterminated text becomes a final
// sentence fragment.
func splitSentences(text string) []string {
	var sentences []string
	var buf strings.Builder

	for _, r := range text {
		buf.WriteRune(r)
		if isSentenceEnd(r) {
			sentences = append(sentences, buf.String())
			buf.Reset()
		}
	}
	if buf.Len() > 0 {
		sentences = append(sentences, buf.String())
	}

	return sentences
}

// isSentenceEnd reports whether r terminates a sentence.
func isSentenceEnd(r rune) bool {
	switch r {
	case '。', '！', '？', '!', '?', '.':
		return true
	}
	return false
}
