package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/kurlez/doctalk/internal/audio"
	"github.com/kurlez/doctalk/internal/config"
	"github.com/kurlez/doctalk/internal/epub"
	ioutils "github.com/kurlez/doctalk/internal/io"
	"github.com/kurlez/doctalk/internal/markdown"
	"github.com/kurlez/doctalk/internal/model"
	"github.com/kurlez/doctalk/internal/text"
	"github.com/kurlez/doctalk/internal/tts"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a conversion progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates document-to-audio conversions.
type Manager struct {
	settings *config.Settings
	engine   tts.Engine
	tagger   *audio.Tagger
	playlist *audio.PlaylistCreator
	images   *ioutils.ImageService

	documents []*model.Document
	artwork   []byte

	totalChunks int32
	doneChunks  int32
	totalDocs   int32
	doneDocs    int32

	producedMu sync.Mutex
	produced   []audio.PlaylistEntry

	onProgress func(ProgressEvent)
}

// NewManager creates a new conversion Manager using the given TTS
// engine.
func NewManager(settings *config.Settings, engine tts.Engine, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings: settings,
		engine:   engine,
		tagger: audio.NewTagger(&audio.TagConfig{
			Artist: settings.Artist,
			Album:  settings.Album,
			Now:    time.Now,
		}),
		playlist:   audio.NewPlaylistCreator(settings.M3UExtended),
		images:     ioutils.NewImageService(),
		onProgress: onProgress,
	}
}

// Initialize expands the input paths into the list of documents to
// convert. Directories are walked recursively for supported files
// (.md, .markdown, .txt, .epub).
func (m *Manager) Initialize(ctx context.Context, inputs string) error {
	pathCfg := m.settings.ToPathConfig()

	for _, input := range m.parseInputPaths(inputs) {
		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := os.Stat(input)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Cannot read %s: %v", input, err), Level: LevelError})
			continue
		}

		if info.IsDir() {
			m.collectFromDir(input, pathCfg)
			continue
		}

		if _, ok := model.DetectFormat(input); !ok {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Unsupported file type: %s", input), Level: LevelWarning})
			continue
		}
		m.addDocument(input, pathCfg)
	}

	if len(m.documents) == 0 {
		return fmt.Errorf("no supported documents found")
	}

	m.totalDocs = int32(len(m.documents))
	return nil
}

// Convert processes all initialized documents.
func (m *Manager) Convert(ctx context.Context) error {
	if err := ioutils.EnsureDir(m.settings.OutputPath); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	m.loadArtwork(ctx)

	g, ctx := errgroup.WithContext(ctx)
	limit := m.settings.MaxConcurrentDocuments
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for _, doc := range m.documents {
		doc := doc
		g.Go(func() error {
			if err := m.convertDocument(ctx, doc); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				m.progress(ProgressEvent{Message: fmt.Sprintf("Failed to convert %s: %v", doc.Title, err), Level: LevelError})
				return nil // Continue with other documents
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if m.settings.CreatePlaylist {
		m.writePlaylist(ctx)
	}

	return nil
}

// GetProgress returns current conversion progress.
func (m *Manager) GetProgress() (docsDone, docsTotal, chunksDone, chunksTotal int32) {
	return atomic.LoadInt32(&m.doneDocs), atomic.LoadInt32(&m.totalDocs),
		atomic.LoadInt32(&m.doneChunks), atomic.LoadInt32(&m.totalChunks)
}

// GetDocumentNames returns display names of all initialized documents.
func (m *Manager) GetDocumentNames() []string {
	names := make([]string, len(m.documents))
	for i, doc := range m.documents {
		names[i] = fmt.Sprintf("%s (%s)", doc.Title, doc.Format)
	}
	return names
}

func (m *Manager) parseInputPaths(inputs string) []string {
	var paths []string
	for _, line := range strings.Split(inputs, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}

func (m *Manager) collectFromDir(dir string, pathCfg *model.PathConfig) {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := model.DetectFormat(path); ok {
			m.addDocument(path, pathCfg)
		}
		return nil
	})
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error scanning %s: %v", dir, err), Level: LevelError})
	}
}

func (m *Manager) addDocument(path string, pathCfg *model.PathConfig) {
	doc := model.NewDocument(path, m.settings.Voice, pathCfg)
	m.documents = append(m.documents, doc)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found document: %s (%s)", doc.Title, doc.Format), Level: LevelInfo})
}

// loadArtwork reads and prepares the configured cover art. A broken
// cover image downgrades to "no artwork" with a warning.
func (m *Manager) loadArtwork(ctx context.Context) {
	if m.settings.CoverArtPath == "" {
		return
	}

	data, err := os.ReadFile(m.settings.CoverArtPath)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error reading cover art: %v", err), Level: LevelWarning})
		return
	}

	prepared, err := m.images.PrepareCover(ctx, data, m.settings.CoverArtMaxSize)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error preparing cover art: %v", err), Level: LevelWarning})
		return
	}

	m.artwork = prepared
}

// extractText turns a source document into cleaned narration text.
func (m *Manager) extractText(doc *model.Document) (string, error) {
	var raw string

	switch doc.Format {
	case model.FormatEPUB:
		extracted, err := epub.ToText(doc.SourcePath)
		if err != nil {
			return "", err
		}
		raw = extracted

	case model.FormatMarkdown:
		data, err := os.ReadFile(doc.SourcePath)
		if err != nil {
			return "", err
		}
		raw = markdown.ToText(string(data))

	default:
		data, err := os.ReadFile(doc.SourcePath)
		if err != nil {
			return "", err
		}
		raw = string(data)
	}

	return text.CleanForSpeech(raw), nil
}

func (m *Manager) convertDocument(ctx context.Context, doc *model.Document) error {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Processing: %s", doc.SourcePath), Level: LevelVerbose})

	narration, err := m.extractText(doc)
	if err != nil {
		return err
	}
	if narration == "" {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Empty document, skipping: %s", doc.Title), Level: LevelWarning})
		atomic.AddInt32(&m.doneDocs, 1)
		return nil
	}

	chunks := text.SplitIntoChunks(narration, m.settings.MaxChunkLength)
	parts := splitParts(chunks, m.settings.MaxPartChars)
	atomic.AddInt32(&m.totalChunks, int32(len(chunks)))

	tempDir, err := os.MkdirTemp("", "doctalk-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tempDir)

	for pi, part := range parts {
		title := doc.PartTitle(pi+1, len(parts))
		outPath := doc.PartPath(pi+1, len(parts))

		if err := m.convertPart(ctx, tempDir, pi, part, title, outPath, len(chunks)); err != nil {
			return err
		}
	}

	atomic.AddInt32(&m.doneDocs, 1)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Converted: %s", doc.Title), Level: LevelSuccess})
	return nil
}

// convertPart synthesizes one output file from a group of chunks.
func (m *Manager) convertPart(ctx context.Context, tempDir string, partIndex int, part []string, title, outPath string, docChunks int) error {
	var segments []string

	for ci, chunk := range part {
		if strings.TrimSpace(chunk) == "" {
			atomic.AddInt32(&m.doneChunks, 1)
			continue
		}

		data, err := m.synthesizeWithRetry(ctx, chunk)
		if err != nil {
			return err
		}

		segPath := filepath.Join(tempDir, fmt.Sprintf("part%02d-seg%04d.mp3", partIndex+1, ci+1))
		if err := ioutils.WriteFile(ctx, segPath, data); err != nil {
			return err
		}

		segments = append(segments, segPath)
		done := atomic.AddInt32(&m.doneChunks, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Synthesized chunk %d/%d: %s", done, docChunks, title), Level: LevelVerbose})
	}

	if len(segments) == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("No audio content generated for %s", title), Level: LevelWarning})
		return nil
	}

	var err error
	if len(segments) == 1 {
		err = ioutils.CopyFile(ctx, segments[0], outPath)
	} else {
		err = audio.ConcatFiles(ctx, outPath, segments)
	}
	if err != nil {
		return err
	}

	if m.settings.ModifyTags {
		// Tagging is cosmetic relative to a playable MP3: failures are
		// surfaced as warnings, never as conversion errors.
		if err := m.tagger.Apply(outPath, title, m.artwork); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error setting MP3 metadata: %v", err), Level: LevelWarning})
		} else {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Added metadata to file: %s", outPath), Level: LevelVerbose})
		}
	}

	m.producedMu.Lock()
	m.produced = append(m.produced, audio.PlaylistEntry{
		Path:   outPath,
		Title:  title,
		Artist: m.settings.Artist,
	})
	m.producedMu.Unlock()

	m.progress(ProgressEvent{Message: fmt.Sprintf("Generated audio: %s", outPath), Level: LevelSuccess})
	return nil
}

func (m *Manager) synthesizeWithRetry(ctx context.Context, chunk string) ([]byte, error) {
	retries := m.settings.SynthesisMaxRetries
	if retries < 1 {
		retries = 1
	}

	var data []byte
	var err error
	for tries := 0; tries < retries; tries++ {
		data, err = m.engine.Synthesize(ctx, chunk)
		if err == nil {
			return data, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d: %v", tries+1, retries, err), Level: LevelWarning})
		m.waitForRetry(ctx, tries)
	}

	return nil, fmt.Errorf("synthesis failed after %d attempts: %w", retries, err)
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.SynthesisRetryCooldown * math.Pow(m.settings.SynthesisRetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (m *Manager) writePlaylist(ctx context.Context) {
	m.producedMu.Lock()
	entries := make([]audio.PlaylistEntry, len(m.produced))
	copy(entries, m.produced)
	m.producedMu.Unlock()

	if len(entries) == 0 {
		return
	}

	name := ioutils.SanitizeFileName(m.settings.Album) + ".m3u"
	path := filepath.Join(m.settings.OutputPath, name)
	content := m.playlist.CreateM3U(entries)

	if err := ioutils.WriteFile(ctx, path, []byte(content)); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
		return
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist: %s", path), Level: LevelSuccess})
}

// splitParts groups chunks into output parts bounded by maxPartChars
// characters each. A non-positive limit keeps everything in one part.
// A single chunk longer than the limit forms its own part.
func splitParts(chunks []string, maxPartChars int) [][]string {
	if maxPartChars <= 0 || len(chunks) == 0 {
		return [][]string{chunks}
	}

	var parts [][]string
	var current []string
	currentLen := 0

	for _, chunk := range chunks {
		chunkLen := utf8.RuneCountInString(chunk)
		if len(current) > 0 && currentLen+chunkLen > maxPartChars {
			parts = append(parts, current)
			current = nil
			currentLen = 0
		}
		current = append(current, chunk)
		currentLen += chunkLen
	}
	if len(current) > 0 {
		parts = append(parts, current)
	}

	return parts
}

// progress delivers an event to the configured callback.
func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
