package markdown

import (
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parserInstance is initialized once and reused. The parser
// configuration never changes and the goldmark Parser is safe to
// share; parsing creates per-call state via Parse(reader).
var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

func getParser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return parserInstance
}

// ToText converts Markdown source to plain text suitable for speech
// synthesis.
//
// The source is parsed with goldmark and the AST is walked directly:
// headings, paragraphs, list items, and table cells each become one
// line of output; links reduce to their label text; autolink URLs are
// kept verbatim (the text cleaner replaces them with a spoken
// placeholder); code blocks, inline code, images, and raw HTML are
// dropped since they do not narrate meaningfully.
//
// The returned text is line-structured; run it through
// text.CleanForSpeech before chunking.
func ToText(source string) string {
	if source == "" {
		return ""
	}

	src := []byte(source)
	document := getParser().Parser().Parse(text.NewReader(src))

	ex := &extractor{source: src}
	ast.Walk(document, ex.walk)

	return strings.TrimRight(ex.out.String(), "\n")
}

// extractor walks a goldmark AST and accumulates spoken text. Inline
// content collects in a block buffer and is flushed as one line when
// the containing block closes.
type extractor struct {
	source []byte
	out    strings.Builder
	block  strings.Builder
}

func (e *extractor) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
		if entering {
			e.block.Reset()
		} else {
			e.flush()
		}

	case *extast.TableCell:
		if entering {
			e.block.Reset()
		} else {
			e.flush()
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
		return ast.WalkSkipChildren, nil

	case *ast.CodeSpan, *ast.Image, *ast.RawHTML:
		return ast.WalkSkipChildren, nil

	case *ast.AutoLink:
		if entering {
			e.block.Write(node.URL(e.source))
		}
		return ast.WalkSkipChildren, nil

	case *ast.Text:
		if entering {
			e.block.Write(node.Segment.Value(e.source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				e.block.WriteByte(' ')
			}
		}

	case *ast.String:
		if entering {
			e.block.Write(node.Value)
		}
	}

	return ast.WalkContinue, nil
}

// flush emits the accumulated block as one output line.
func (e *extractor) flush() {
	line := strings.TrimSpace(e.block.String())
	e.block.Reset()
	if line == "" {
		return
	}
	e.out.WriteString(line)
	e.out.WriteByte('\n')
}
