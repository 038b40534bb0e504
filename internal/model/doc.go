// Package model defines the core data structures used throughout
// doctalk.
//
// # Document
//
// Document represents one source file queued for narration, with its
// computed output path:
//
//	cfg := &model.PathConfig{OutputDir: "/audio", FileNameFormat: "{title}.mp3"}
//	doc := model.NewDocument("/notes/Trip Report.md", "xiaoxiao", cfg)
//	fmt.Println(doc.OutputPath) // Where the MP3 will be written
//
// Long documents that get split into several output files use
// PartTitle and PartPath for per-part naming:
//
//	doc.PartTitle(2, 3) // "Trip Report (Part 2)"
//	doc.PartPath(2, 3)  // "/audio/Trip Report (Part 2).mp3"
//
// # Path Configuration
//
// PathConfig controls output naming via placeholders: {title}, {voice}.
package model
