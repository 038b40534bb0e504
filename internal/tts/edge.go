package tts

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// DefaultSynthesisTimeout bounds one edge-tts invocation. Long chunks
// at the character cap take well under a minute to synthesize.
const DefaultSynthesisTimeout = 120 * time.Second

// Edge synthesizes speech through the Microsoft Edge TTS service by
// invoking the edge-tts command-line tool (pip install edge-tts).
//
// Output is MP3 (edge-tts default format: audio-24khz-48kbitrate-mono-mp3),
// which is what the rest of the pipeline expects.
//
// Example:
//
//	engine := tts.NewEdge(tts.EdgeConfig{Voice: "xiaoxiao"})
//	audio, err := engine.Synthesize(ctx, chunk)
type Edge struct {
	voice   string
	rate    string
	binary  string
	timeout time.Duration
}

// EdgeConfig configures the Edge engine.
type EdgeConfig struct {
	// Voice is a short voice name (see Voices) or a full voice ID like
	// "zh-CN-XiaoxiaoNeural". Empty selects the default voice.
	Voice string

	// Rate adjusts speech rate, e.g. "+10%". Empty uses the service
	// default.
	Rate string

	// Binary overrides the edge-tts executable path. Empty means
	// "edge-tts" resolved from PATH.
	Binary string

	// Timeout bounds one synthesis call. Zero uses
	// DefaultSynthesisTimeout.
	Timeout time.Duration
}

// NewEdge creates an Edge engine.
func NewEdge(cfg EdgeConfig) *Edge {
	e := &Edge{
		voice:   ResolveVoice(cfg.Voice),
		rate:    cfg.Rate,
		binary:  cfg.Binary,
		timeout: cfg.Timeout,
	}
	if e.binary == "" {
		e.binary = "edge-tts"
	}
	if e.timeout <= 0 {
		e.timeout = DefaultSynthesisTimeout
	}
	return e
}

// Name implements Engine.
func (e *Edge) Name() string { return "edge-tts" }

// Voice returns the resolved full voice ID in use.
func (e *Edge) Voice() string { return e.voice }

// Synthesize runs the edge-tts tool and returns the generated MP3
// bytes. The tool writes to a temporary file which is removed before
// returning.
func (e *Edge) Synthesize(ctx context.Context, text string) ([]byte, error) {
	outPath := filepath.Join(os.TempDir(), fmt.Sprintf("doctalk-%d.mp3", time.Now().UnixNano()))
	defer os.Remove(outPath)

	args := []string{
		"--voice", e.voice,
		"--text", text,
		"--write-media", outPath,
	}
	if e.rate != "" {
		args = append(args, "--rate", e.rate)
	}

	cmdCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, e.binary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("edge-tts failed: %w (output: %s)", err, string(output))
	}

	audio, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("read edge-tts output: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("edge-tts produced no audio")
	}

	return audio, nil
}
