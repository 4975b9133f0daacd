package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTextExtractor(t *testing.T) {
	path := writeFile(t, "doc.txt", "First paragraph.\n\nSecond paragraph.\n\n\n")

	result, err := NewTextExtractor().Extract(path)
	require.NoError(t, err)
	assert.Contains(t, result.Content, "First paragraph.")
	assert.Equal(t, 2, result.ParagraphCount)
	assert.Equal(t, "plain_text", result.ExtractionMethod)
}

func TestTextExtractor_MissingFile(t *testing.T) {
	_, err := NewTextExtractor().Extract(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestHTMLExtractor(t *testing.T) {
	html := `<html><head><title>Ruling</title></head><body>
<article>
<h1>Ruling</h1>
<p>The court granted the motion for summary judgment in this case, finding no genuine dispute of material fact between the parties.</p>
<p>The plaintiff was ordered to pay costs within thirty days of the entry of this judgment, as provided by the governing statute.</p>
</article>
</body></html>`
	path := writeFile(t, "doc.html", html)

	result, err := NewHTMLExtractor(zap.NewNop()).Extract(path)
	require.NoError(t, err)
	assert.Contains(t, result.Content, "summary judgment")
	assert.Equal(t, 2, result.ParagraphCount)
	assert.NotEmpty(t, result.ExtractionMethod)
}

func TestRegistry_RoutesByExtension(t *testing.T) {
	registry := NewRegistry()
	registry.Register(".txt", NewTextExtractor())

	path := writeFile(t, "doc.txt", "Plain content.")
	result, err := registry.Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "plain_text", result.ExtractionMethod)
}

func TestRegistry_UnsupportedFormat(t *testing.T) {
	registry := NewRegistry()
	registry.Register(".txt", NewTextExtractor())

	_, err := registry.Extract("document.pdf")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}
