package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/bogem/id3v2"
)

// TagConfig holds the metadata applied to generated MP3 files.
//
// Title varies per file and is passed to Apply; artist and album are
// fixed for a conversion batch and configured here. Now supplies the
// clock used for the year frame so tagging stays deterministic in
// tests.
type TagConfig struct {
	// Artist is written to the TPE1 (Lead artist) frame.
	Artist string

	// Album is written to the TALB (Album title) frame.
	Album string

	// Now returns the current time, used for the year frames.
	// Defaults to time.Now.
	Now func() time.Time
}

// DefaultTagConfig returns the default tag configuration for narrated
// documents.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		Artist: "Edge TTS",
		Album:  "Markdown Audio",
		Now:    time.Now,
	}
}

// Tagger writes ID3 tags to generated MP3 files.
//
// Tagger uses the id3v2 library to set title, artist, album, and the
// recording year (taken from the configured clock at call time). Text
// frames are written with UTF-16 encoding. Frames not touched by the
// Tagger are preserved.
//
// Example:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	if err := tagger.Apply("/out/Notes.mp3", "Notes", nil); err != nil {
//	    // tagging is cosmetic; log and move on
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used. A nil Now falls back
// to time.Now.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Tagger{config: config}
}

// Apply writes title, artist, album, and year tags to the MP3 file at
// path, then embeds artwork as the front cover if artwork bytes are
// provided (pass nil to skip).
//
// An existing tag block is loaded from the file when present; a
// missing or unreadable tag block is replaced with a fresh empty one
// rather than reported. A missing file is still an error, since there
// is nothing to attach the tags to. Re-applying with a different title
// overwrites the previous one.
//
// Errors are returned to the caller rather than printed; the
// conversion pipeline treats them as warnings so a metadata failure
// never aborts audio generation.
func (t *Tagger) Apply(path, title string, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("open %s: %w", path, err)
		}
		// Corrupt or unparseable tag data: start from an empty tag
		// block attached to the same file.
		tag, err = id3v2.Open(path, id3v2.Options{Parse: false})
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF16)

	tag.SetTitle(title)
	tag.SetArtist(t.config.Artist)
	tag.SetAlbum(t.config.Album)

	year := t.config.Now().Format("2006")
	tag.AddTextFrame("TYER", id3v2.EncodingUTF16, year) // ID3v2.3
	tag.AddTextFrame("TDRC", id3v2.EncodingUTF16, year) // ID3v2.4

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags for %s: %w", path, err)
	}
	return nil
}

// updateArtwork embeds cover art as an attached picture frame,
// replacing any existing cover.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}
