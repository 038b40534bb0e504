// Package audio provides audio file manipulation services for
// generated narrations: ID3 tag writing, MP3 segment concatenation,
// and playlist generation.
//
// # ID3 Tagging
//
// Use the Tagger to stamp generated MP3 files with metadata:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.Apply("/out/Notes.mp3", "Notes", coverArt)
//
// The tagger writes title, artist, album, and the current year, and
// can embed cover art. Tagging failures are reported as errors but are
// treated as non-fatal by the conversion pipeline.
//
// # Segment Concatenation
//
// Long documents are synthesized chunk by chunk; ConcatFiles joins the
// per-chunk MP3 segments into the final output file:
//
//	err := audio.ConcatFiles(ctx, "/out/Notes.mp3", segmentPaths)
//
// # Playlists
//
// Generate an M3U playlist covering one conversion batch:
//
//	creator := audio.NewPlaylistCreator(true)
//	content := creator.CreateM3U(entries)
package audio
