package epub

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testContainer = `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

const testOPF = `<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" xmlns:dc="http://purl.org/dc/elements/1.1/" version="2.0">
  <metadata>
    <dc:title>Test Book</dc:title>
  </metadata>
  <manifest>
    <item id="ch1" href="ch1.xhtml" media-type="application/xhtml+xml"/>
    <item id="ch2" href="ch2.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine>
    <itemref idref="ch1"/>
    <itemref idref="ch2"/>
  </spine>
</package>`

const testChapter1 = `<?xml version="1.0"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>ignored</title><style>p { color: red; }</style></head>
<body>
  <h1>Chapter One</h1>
  <p>First paragraph.</p>
  <p>Second paragraph.</p>
  <script>alert("never read this aloud")</script>
</body>
</html>`

const testChapter2 = `<html><body><h1>Chapter Two</h1><p>More text.</p></body></html>`

func writeTestEPUB(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.epub")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

func defaultEntries() map[string]string {
	return map[string]string{
		"mimetype":               "application/epub+zip",
		"META-INF/container.xml": testContainer,
		"OEBPS/content.opf":      testOPF,
		"OEBPS/ch1.xhtml":        testChapter1,
		"OEBPS/ch2.xhtml":        testChapter2,
	}
}

func TestToText(t *testing.T) {
	path := writeTestEPUB(t, defaultEntries())

	got, err := ToText(path)
	if err != nil {
		t.Fatalf("ToText() error: %v", err)
	}

	lines := strings.Split(got, "\n")
	if lines[0] != "Test Book" {
		t.Errorf("first line = %q, want book title", lines[0])
	}

	for _, want := range []string{"Chapter One", "First paragraph.", "Second paragraph.", "Chapter Two", "More text."} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	// Chapters follow spine order.
	if strings.Index(got, "Chapter One") > strings.Index(got, "Chapter Two") {
		t.Error("chapters out of spine order")
	}
}

func TestToText_ScriptAndStyleDropped(t *testing.T) {
	path := writeTestEPUB(t, defaultEntries())

	got, err := ToText(path)
	if err != nil {
		t.Fatalf("ToText() error: %v", err)
	}

	if strings.Contains(got, "never read this aloud") {
		t.Error("script content leaked into narration")
	}
	if strings.Contains(got, "color: red") {
		t.Error("style content leaked into narration")
	}
	if strings.Contains(got, "ignored") {
		t.Error("head title leaked into narration")
	}
}

func TestToText_MissingContainer(t *testing.T) {
	entries := defaultEntries()
	delete(entries, "META-INF/container.xml")
	path := writeTestEPUB(t, entries)

	if _, err := ToText(path); err == nil {
		t.Error("expected error for epub without container.xml")
	}
}

func TestToText_MissingChapterSkipped(t *testing.T) {
	entries := defaultEntries()
	delete(entries, "OEBPS/ch1.xhtml")
	path := writeTestEPUB(t, entries)

	got, err := ToText(path)
	if err != nil {
		t.Fatalf("ToText() error: %v", err)
	}
	if !strings.Contains(got, "Chapter Two") {
		t.Error("remaining chapters should survive a missing one")
	}
}

func TestToText_NotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.epub")
	if err := os.WriteFile(path, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ToText(path); err == nil {
		t.Error("expected error for non-zip input")
	}
}
