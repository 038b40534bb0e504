// Package markdown converts Markdown documents into plain text for
// speech synthesis.
//
// Structural markup is flattened into one line per block, syntax that
// cannot be narrated (code, images, raw HTML) is dropped, and link
// labels replace their targets:
//
//	plain := markdown.ToText(source)
//	narration := text.CleanForSpeech(plain)
package markdown
