// Package pipeline provides the conversion orchestration logic for
// turning documents into narrated MP3 files.
//
// # Manager
//
// The Manager coordinates the entire conversion process:
//
//  1. Expand input paths into supported documents
//  2. Extract and clean the spoken text (markdown, epub, plain text)
//  3. Split text into TTS-sized chunks
//  4. Synthesize each chunk through the configured engine
//  5. Concatenate chunk audio into the output MP3
//  6. Tag the MP3 with ID3 metadata and optional cover art
//  7. Generate a playlist (optional)
//
// # Basic Usage
//
//	engine := tts.NewEdge(tts.EdgeConfig{Voice: settings.Voice})
//	manager := pipeline.NewManager(settings, engine, func(event pipeline.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx, "/notes"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := manager.Convert(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Part Splitting
//
// Documents whose narration text exceeds settings.MaxPartChars are
// split into multiple "(Part N)" files, each tagged with its own part
// title. This keeps single output files at a listenable length without
// decoding or re-encoding audio.
//
// # Progress Tracking
//
// Progress is reported via a callback that receives ProgressEvent
// values with levels Info, Verbose, Warning, Error, and Success.
// Chunk counts for the progress bar are available from GetProgress.
//
// # Error Policy
//
// Synthesis failures are retried with exponential cooldown and fail
// the document after the configured attempts. Tagging failures are
// warnings: a broken metadata write never discards generated audio.
package pipeline
