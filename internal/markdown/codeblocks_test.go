package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCodeBlocks(t *testing.T) {
	source := strings.Join([]string{
		"---",              // 1
		"title: Closures",  // 2
		"---",              // 3
		"",                 // 4
		"# Closures",       // 5
		"",                 // 6
		"```js",            // 7
		"const counter = () => {", // 8
		"  let n = 0;",     // 9
		"};",               // 10
		"```",              // 11
		"",                 // 12
		"```mermaid",       // 13
		"graph TD;",        // 14
		"```",              // 15
		"",                 // 16
		"```",              // 17
		"no language here", // 18
		"```",              // 19
	}, "\n")

	p := NewParser()
	blocks, err := p.ExtractCodeBlocks([]byte(source))
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	js := blocks[0]
	assert.Equal(t, "js", js.Language)
	assert.Equal(t, 7, js.Line)
	assert.False(t, js.IsMermaid)
	assert.Equal(t, "const counter = () => {\n  let n = 0;\n};\n", js.Code)

	mermaid := blocks[1]
	assert.Equal(t, "mermaid", mermaid.Language)
	assert.Equal(t, 13, mermaid.Line)
	assert.True(t, mermaid.IsMermaid)

	bare := blocks[2]
	assert.Equal(t, "", bare.Language)
	assert.Equal(t, 17, bare.Line)
}

func TestExtractCodeBlocks_IgnoresIndentedBlocks(t *testing.T) {
	source := "# Title\n\n    indented code, no fence\n\nProse.\n"

	p := NewParser()
	blocks, err := p.ExtractCodeBlocks([]byte(source))
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestExtractCodeBlocks_None(t *testing.T) {
	p := NewParser()
	blocks, err := p.ExtractCodeBlocks([]byte("just prose"))
	require.NoError(t, err)
	assert.Empty(t, blocks)
}
