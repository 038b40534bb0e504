package audio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PlaylistCreator generates an M3U playlist for a batch of narrated
// documents.
//
// The playlist lists every MP3 produced by one conversion run, in the
// order the documents were processed, so a player can walk through a
// converted folder like an audiobook.
//
// Example:
//
//	creator := audio.NewPlaylistCreator(true)
//	content := creator.CreateM3U(entries)
//	os.WriteFile(filepath.Join(outputDir, "Markdown Audio.m3u"), []byte(content), 0644)
type PlaylistCreator struct {
	extended bool // include #EXTINF lines with titles
}

// PlaylistEntry describes one produced MP3 for playlist generation.
type PlaylistEntry struct {
	// Path is the MP3 file path. Only the base name is written to the
	// playlist, which is assumed to live in the same directory.
	Path string

	// Title is the narration title (document title, possibly with a
	// part suffix).
	Title string

	// Artist is the configured artist tag.
	Artist string
}

// NewPlaylistCreator creates a new PlaylistCreator. When extended is
// true, #EXTINF lines with artist and title are included.
func NewPlaylistCreator(extended bool) *PlaylistCreator {
	return &PlaylistCreator{extended: extended}
}

// CreateM3U generates M3U playlist content for the given entries.
//
// The narration duration is not known without decoding the audio, so
// extended entries use -1 (unknown length), which players accept.
func (p *PlaylistCreator) CreateM3U(entries []PlaylistEntry) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, entry := range entries {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s - %s\n", entry.Artist, entry.Title))
		}
		sb.WriteString(filepath.Base(entry.Path) + "\n")
	}

	return sb.String()
}
