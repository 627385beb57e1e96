package markdown

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/openlessons/bookd/internal/model"
)

const mermaidLanguage = "mermaid"

// ExtractCodeBlocks walks the document AST and lifts out every fenced code
// block with its info-string language and 1-based line number in source.
// Indented (non-fenced) code blocks are ignored; they carry no language tag.
func (p *Parser) ExtractCodeBlocks(source []byte) ([]model.CodeBlock, error) {
	doc := p.md.Parser().Parse(text.NewReader(source))

	var blocks []model.CodeBlock
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		block := model.CodeBlock{
			Language: string(fenced.Language(source)),
		}
		block.IsMermaid = block.Language == mermaidLanguage

		var code bytes.Buffer
		lines := fenced.Lines()
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			code.Write(segment.Value(source))
		}
		block.Code = code.String()

		// The opening fence sits one line above the first content line.
		// An empty block falls back to the info string's own line.
		if lines.Len() > 0 {
			block.Line = lineAt(source, lines.At(0).Start) - 1
		} else if fenced.Info != nil {
			block.Line = lineAt(source, fenced.Info.Segment.Start)
		}

		blocks = append(blocks, block)
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

// lineAt returns the 1-based line number of a byte offset.
func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte("\n")) + 1
}
