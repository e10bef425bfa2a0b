package stylesmith

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIsRenderedDocument(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"html file", "pages/index.html", true},
		{"htm file", "legacy/page.htm", true},
		{"xhtml file", "old/page.xhtml", true},
		{"uppercase extension", "pages/INDEX.HTML", true},
		{"css file", "styles/main.css", false},
		{"go file", "main.go", false},
		{"no extension", "README", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, isRenderedDocument(tt.path), "isRenderedDocument(%q)", tt.path)
		})
	}
}

func TestDiscoverInputs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html></html>")
	writeFile(t, dir, "pages/about.html", "<html></html>")
	writeFile(t, dir, "styles/main.css", "body {}")
	writeFile(t, dir, "notes.txt", "x")

	files, stats, err := DiscoverInputs([]string{filepath.Join(dir, "**", "*")})
	require.NoError(t, err)

	require.Len(t, files, 2)
	require.Equal(t, 2, stats.FilesScanned)
	require.Equal(t, 2, stats.FilesSkipped)
	require.Equal(t, 4, stats.FilesDiscovered)
}

func TestDiscoverInputsDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html></html>")

	// Both patterns match the same file.
	files, stats, err := DiscoverInputs([]string{
		filepath.Join(dir, "*.html"),
		filepath.Join(dir, "index.html"),
	})
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, 1, stats.FilesScanned)
}

func TestDiscoverInputsNoMatches(t *testing.T) {
	dir := t.TempDir()

	files, stats, err := DiscoverInputs([]string{filepath.Join(dir, "*.html")})
	require.NoError(t, err)
	require.Empty(t, files)
	require.Equal(t, 0, stats.FilesDiscovered)
}

func TestLoadSources(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.html",
		`<html><body><p style="color: #ff0000">x</p></body></html>`)

	sources, err := LoadSources([]string{path})
	require.NoError(t, err)
	require.Len(t, sources, 1)
	require.NotNil(t, sources[0].Doc)

	a := Analyze(sources[0].Doc, sources[0].ID)
	require.Equal(t, "#ff0000", a.Colors.All[0].Value)
}

func TestLoadSourcesMissingFile(t *testing.T) {
	_, err := LoadSources([]string{"/nonexistent/page.html"})
	require.Error(t, err)
}
