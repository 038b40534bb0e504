// Package text provides text preparation for speech synthesis.
//
// # Chunking
//
// TTS backends limit the size of a single request. SplitIntoChunks
// splits long text into request-sized pieces without ever breaking a
// sentence:
//
//	chunks := text.SplitIntoChunks(document, text.DefaultMaxChunkLength)
//
// Chunks concatenate back to the original text, so nothing is lost or
// reordered between the document and the synthesized audio.
//
// # Cleaning
//
// CleanForSpeech normalizes extracted document text before chunking:
// URLs become a spoken placeholder, whitespace is collapsed, and
// paragraph breaks become sentence breaks:
//
//	narration := text.CleanForSpeech(extracted)
package text
