package tts

import (
	"sort"
	"strings"
)

// DefaultVoice is the voice used when none is configured.
const DefaultVoice = "xiaoxiao"

// voices maps short voice names to full Edge TTS voice IDs.
var voices = map[string]string{
	"xiaoxiao": "zh-CN-XiaoxiaoNeural", // Warm and vivid
	"xiaoyi":   "zh-CN-XiaoyiNeural",   // Gentle and natural
	"xiaoxuan": "zh-CN-XiaoxuanNeural", // Mature and elegant
	"xiaozhen": "zh-CN-XiaozhenNeural", // Emotional and sincere
	"xiaohan":  "zh-CN-XiaohanNeural",  // Warm and sweet
	"xiaomeng": "zh-CN-XiaomengNeural", // Cute and energetic
	"aria":     "en-US-AriaNeural",
	"michelle": "en-US-MichelleNeural",
}

// ResolveVoice maps a short voice name to its full voice ID.
//
// Full voice IDs (anything containing a hyphen) pass through
// unchanged, so callers can use voices outside the registry. Unknown
// short names and the empty string resolve to the default voice.
func ResolveVoice(name string) string {
	if strings.Contains(name, "-") {
		return name
	}
	if id, ok := voices[strings.ToLower(name)]; ok {
		return id
	}
	return voices[DefaultVoice]
}

// VoiceNames returns the registered short voice names, sorted.
func VoiceNames() []string {
	names := make([]string, 0, len(voices))
	for name := range voices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VoiceID returns the full voice ID for a registered short name.
func VoiceID(name string) (string, bool) {
	id, ok := voices[strings.ToLower(name)]
	return id, ok
}
