package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p := NewParser()

	html, err := p.Parse([]byte("# Getting Started\n\nSome **bold** text.\n"))
	require.NoError(t, err)

	assert.Contains(t, string(html), `<h1 id="getting-started">Getting Started</h1>`)
	assert.Contains(t, string(html), "<strong>bold</strong>")
}

func TestParse_GFMTable(t *testing.T) {
	p := NewParser()

	html, err := p.Parse([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)

	assert.Contains(t, string(html), "<table>")
}

func TestHasFrontmatter(t *testing.T) {
	assert.True(t, HasFrontmatter([]byte("---\ntitle: x\n---\nbody")))
	assert.True(t, HasFrontmatter([]byte("---\r\ntitle: x\r\n---\r\nbody")))
	assert.False(t, HasFrontmatter([]byte("# no front-matter")))
	assert.False(t, HasFrontmatter([]byte("")))
	assert.False(t, HasFrontmatter([]byte("\n---\ntitle: x\n---")))
}

func TestFrontmatterLines(t *testing.T) {
	source := []byte("---\ntitle: x\ndescription: y\n---\n# Body\n")
	assert.Equal(t, 4, FrontmatterLines(source))

	assert.Equal(t, 0, FrontmatterLines([]byte("# no front-matter\n")))

	// Unterminated block counts as no front-matter.
	assert.Equal(t, 0, FrontmatterLines([]byte("---\ntitle: x\n# Body\n")))
}

func TestSplitFrontmatter(t *testing.T) {
	source := []byte("---\ntitle: x\n---\n# Body\n\nProse.\n")

	fm, body := SplitFrontmatter(source)
	assert.Equal(t, "title: x\n", string(fm))
	assert.Equal(t, "# Body\n\nProse.\n", string(body))
}

func TestSplitFrontmatter_NoBlock(t *testing.T) {
	source := []byte("# Body only\n")

	fm, body := SplitFrontmatter(source)
	assert.Nil(t, fm)
	assert.Equal(t, source, body)
}
