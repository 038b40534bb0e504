package epub

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"

	"golang.org/x/net/html"
)

// containerXML locates the OPF package document inside an EPUB.
const containerXML = "META-INF/container.xml"

type container struct {
	Rootfiles []struct {
		FullPath string `xml:"full-path,attr"`
	} `xml:"rootfiles>rootfile"`
}

type packageDoc struct {
	Titles []string `xml:"metadata>title"`
	Items  []struct {
		ID        string `xml:"id,attr"`
		Href      string `xml:"href,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"manifest>item"`
	Itemrefs []struct {
		IDRef string `xml:"idref,attr"`
	} `xml:"spine>itemref"`
}

// ToText extracts the spoken text of an EPUB file.
//
// The EPUB zip container is opened, the OPF package document is
// located via META-INF/container.xml, and the spine's content
// documents are processed in reading order. Head, script, and style
// elements are removed; the body is flattened to text, one line per
// block element. The book title from the package metadata becomes the
// first line.
//
// A malformed container or package document is an error. Individual
// chapters that fail to read or parse are skipped, so one broken
// chapter does not lose the rest of the book.
func ToText(epubPath string) (string, error) {
	zr, err := zip.OpenReader(epubPath)
	if err != nil {
		return "", fmt.Errorf("open epub %s: %w", epubPath, err)
	}
	defer zr.Close()

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	opfPath, err := findOPFPath(files)
	if err != nil {
		return "", err
	}

	opfData, err := readZipFile(files[opfPath])
	if err != nil {
		return "", fmt.Errorf("read package document: %w", err)
	}

	var pkg packageDoc
	if err := xml.Unmarshal(opfData, &pkg); err != nil {
		return "", fmt.Errorf("parse package document: %w", err)
	}

	hrefByID := make(map[string]string, len(pkg.Items))
	for _, item := range pkg.Items {
		hrefByID[item.ID] = item.Href
	}

	opfDir := path.Dir(opfPath)

	var lines []string
	if len(pkg.Titles) > 0 && pkg.Titles[0] != "" {
		lines = append(lines, pkg.Titles[0])
	}

	for _, ref := range pkg.Itemrefs {
		href, ok := hrefByID[ref.IDRef]
		if !ok {
			continue
		}
		f, ok := files[path.Join(opfDir, href)]
		if !ok {
			continue
		}

		data, err := readZipFile(f)
		if err != nil {
			// One unreadable chapter should not lose the book.
			continue
		}

		chapter := extractHTMLText(data)
		if chapter != "" {
			lines = append(lines, chapter)
		}
	}

	return strings.Join(lines, "\n"), nil
}

// findOPFPath reads container.xml and returns the package document
// path.
func findOPFPath(files map[string]*zip.File) (string, error) {
	f, ok := files[containerXML]
	if !ok {
		return "", fmt.Errorf("not an epub: missing %s", containerXML)
	}

	data, err := readZipFile(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", containerXML, err)
	}

	var c container
	if err := xml.Unmarshal(data, &c); err != nil {
		return "", fmt.Errorf("parse %s: %w", containerXML, err)
	}
	if len(c.Rootfiles) == 0 || c.Rootfiles[0].FullPath == "" {
		return "", fmt.Errorf("%s declares no rootfile", containerXML)
	}

	opfPath := c.Rootfiles[0].FullPath
	if _, ok := files[opfPath]; !ok {
		return "", fmt.Errorf("package document %s missing from archive", opfPath)
	}
	return opfPath, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// blockElements are HTML elements that end a line of narration.
var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "tr": true, "section": true, "article": true,
}

// extractHTMLText flattens an XHTML chapter to plain text, one line
// per block element, dropping script and style content.
func extractHTMLText(data []byte) string {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	walkHTML(root, &sb)

	// Collapse blank lines introduced by nested block elements.
	var lines []string
	for _, line := range strings.Split(sb.String(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func walkHTML(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "head" || n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHTML(c, sb)
	}

	if n.Type == html.ElementNode && blockElements[n.Data] {
		sb.WriteByte('\n')
	}
}
