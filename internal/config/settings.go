package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kurlez/doctalk/internal/model"
	"github.com/kurlez/doctalk/internal/text"
)

// Settings holds all configuration options.
type Settings struct {
	// Output settings
	OutputPath     string `json:"output_path"`
	FileNameFormat string `json:"file_name_format"`

	// Synthesis settings
	Voice                  string  `json:"voice"`
	Rate                   string  `json:"rate"`
	MaxChunkLength         int     `json:"max_chunk_length"`
	MaxConcurrentDocuments int     `json:"max_concurrent_documents"`
	SynthesisMaxRetries    int     `json:"synthesis_max_retries"`
	SynthesisRetryCooldown float64 `json:"synthesis_retry_cooldown"`
	SynthesisRetryExponent float64 `json:"synthesis_retry_exponent"`

	// Part splitting: documents whose cleaned text exceeds this many
	// characters are split into multiple "(Part N)" output files.
	// Zero disables splitting.
	MaxPartChars int `json:"max_part_chars"`

	// Tag settings
	ModifyTags bool   `json:"modify_tags"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`

	// Cover art settings
	CoverArtPath    string `json:"cover_art_path"`
	CoverArtMaxSize int    `json:"cover_art_max_size"`

	// Playlist settings
	CreatePlaylist bool `json:"create_playlist"`
	M3UExtended    bool `json:"m3u_extended"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		OutputPath:     filepath.Join(homeDir, "Music", "doctalk"),
		FileNameFormat: "{title}.mp3",

		Voice:                  "xiaoxiao",
		Rate:                   "",
		MaxChunkLength:         text.DefaultMaxChunkLength,
		MaxConcurrentDocuments: 1,
		SynthesisMaxRetries:    7,
		SynthesisRetryCooldown: 0.2,
		SynthesisRetryExponent: 4.0,

		MaxPartChars: 0,

		ModifyTags: true,
		Artist:     "Edge TTS",
		Album:      "Markdown Audio",

		CoverArtPath:    "",
		CoverArtMaxSize: 1000,

		CreatePlaylist: false,
		M3UExtended:    true,
	}
}

// Load reads settings from a JSON file. A missing file yields
// defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToPathConfig converts settings to the model's PathConfig.
func (s *Settings) ToPathConfig() *model.PathConfig {
	return &model.PathConfig{
		OutputDir:      s.OutputPath,
		FileNameFormat: s.FileNameFormat,
	}
}
