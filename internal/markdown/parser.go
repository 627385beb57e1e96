package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"go.abhg.dev/goldmark/frontmatter"
)

type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			&frontmatter.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	return &Parser{
		md: md,
	}
}

func (p *Parser) Parse(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := p.md.Convert(source, &buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HasFrontmatter reports whether the source opens with a front-matter block.
func HasFrontmatter(source []byte) bool {
	return bytes.HasPrefix(source, []byte("---\n")) || bytes.HasPrefix(source, []byte("---\r\n"))
}

// FrontmatterLines returns the number of source lines occupied by the
// front-matter block including both delimiter lines, so that body line
// numbers can be reported relative to the file.
func FrontmatterLines(source []byte) int {
	if !HasFrontmatter(source) {
		return 0
	}
	lines := bytes.Split(source, []byte("\n"))
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimRight(lines[i], "\r"), []byte("---")) {
			return i + 1
		}
	}
	return 0
}

// SplitFrontmatter returns the raw front-matter block (without delimiters)
// and the body that follows. A file without front-matter yields an empty
// front-matter slice and the whole source as body.
func SplitFrontmatter(source []byte) (fm []byte, body []byte) {
	n := FrontmatterLines(source)
	if n == 0 {
		return nil, source
	}
	lines := bytes.SplitAfter(source, []byte("\n"))
	fm = bytes.Join(lines[1:n-1], nil)
	body = bytes.Join(lines[n:], nil)
	return fm, body
}
