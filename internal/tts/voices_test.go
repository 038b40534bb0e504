package tts

import (
	"testing"
	"time"
)

func TestResolveVoice(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"xiaoxiao", "zh-CN-XiaoxiaoNeural"},
		{"XIAOYI", "zh-CN-XiaoyiNeural"},
		{"aria", "en-US-AriaNeural"},
		{"zh-CN-YunxiNeural", "zh-CN-YunxiNeural"}, // full ID passes through
		{"nosuchvoice", "zh-CN-XiaoxiaoNeural"},    // unknown falls back
		{"", "zh-CN-XiaoxiaoNeural"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ResolveVoice(tt.input); got != tt.want {
				t.Errorf("ResolveVoice(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVoiceNames(t *testing.T) {
	names := VoiceNames()
	if len(names) == 0 {
		t.Fatal("no registered voices")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
	for _, name := range names {
		if _, ok := VoiceID(name); !ok {
			t.Errorf("VoiceID(%q) not found for listed name", name)
		}
	}
}

func TestNewEdge_Defaults(t *testing.T) {
	e := NewEdge(EdgeConfig{})

	if e.Voice() != "zh-CN-XiaoxiaoNeural" {
		t.Errorf("default voice = %q, want zh-CN-XiaoxiaoNeural", e.Voice())
	}
	if e.binary != "edge-tts" {
		t.Errorf("default binary = %q, want edge-tts", e.binary)
	}
	if e.timeout != DefaultSynthesisTimeout {
		t.Errorf("default timeout = %v, want %v", e.timeout, DefaultSynthesisTimeout)
	}
}

func TestNewEdge_Config(t *testing.T) {
	e := NewEdge(EdgeConfig{
		Voice:   "aria",
		Rate:    "+10%",
		Binary:  "/opt/bin/edge-tts",
		Timeout: 5 * time.Second,
	})

	if e.Voice() != "en-US-AriaNeural" {
		t.Errorf("voice = %q, want en-US-AriaNeural", e.Voice())
	}
	if e.rate != "+10%" || e.binary != "/opt/bin/edge-tts" || e.timeout != 5*time.Second {
		t.Errorf("config not applied: %+v", e)
	}
}
