// Package tts drives external text-to-speech backends.
//
// The Engine interface takes one chunk of prepared text and returns
// MP3 audio. The Edge implementation shells out to the edge-tts
// command-line tool:
//
//	engine := tts.NewEdge(tts.EdgeConfig{Voice: "xiaoxiao", Rate: "+5%"})
//	audio, err := engine.Synthesize(ctx, chunk)
//
// Short voice names resolve through the registry in voices.go; full
// voice IDs (e.g. "en-GB-SoniaNeural") are passed through as-is.
package tts
