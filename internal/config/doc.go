// Package config provides configuration management for doctalk.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to PathConfig for output naming
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Outputs to ~/Music/doctalk
//	// xiaoxiao voice, ID3 tagging enabled
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// Uses defaults if the file doesn't exist
//
// # Saving Settings
//
//	settings.Voice = "xiaohan"
//	err := settings.Save("/path/to/config.json")
package config
