package tts

import "context"

// Engine synthesizes speech from text.
//
// Implementations receive one chunk of prepared text per call and
// return encoded MP3 audio. Synthesis itself is delegated to an
// external backend; this package only drives it.
type Engine interface {
	// Name identifies the engine for logs and progress messages.
	Name() string

	// Synthesize converts text to MP3 audio bytes. The text is
	// expected to fit the backend's per-request limit; use
	// text.SplitIntoChunks for longer input.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// EngineFunc adapts a function to the Engine interface. Used mainly
// by tests that need a synthesis stub.
type EngineFunc func(ctx context.Context, text string) ([]byte, error)

// Name implements Engine.
func (EngineFunc) Name() string { return "func" }

// Synthesize implements Engine.
func (f EngineFunc) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return f(ctx, text)
}
