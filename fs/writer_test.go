package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	web2llm "github.com/yamasammy/Web2LLM"
	"github.com/yamasammy/Web2LLM/fs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Writer implements web2llm.ResultWriter at compile time.
var _ web2llm.ResultWriter = (*fs.Writer)(nil)

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   *web2llm.Result
		override string
		want     string
	}{
		{
			name:   "title with spaces",
			result: &web2llm.Result{URL: "https://example.com/a", Title: "Understanding Ocean Tides"},
			want:   "Understanding-Ocean-Tides",
		},
		{
			name:   "title with unsafe characters",
			result: &web2llm.Result{URL: "https://example.com/a", Title: `What? A "Guide": Part 1/2`},
			want:   "What-A-Guide-Part-12",
		},
		{
			name:   "long title capped at 100 characters",
			result: &web2llm.Result{URL: "https://example.com/a", Title: strings.Repeat("x", 150)},
			want:   strings.Repeat("x", 100),
		},
		{
			name:   "empty title falls back to hostname and path",
			result: &web2llm.Result{URL: "https://example.com/blog/post-1", Title: ""},
			want:   "example.com_blog_post-1",
		},
		{
			name:   "symbol-only title falls back to URL",
			result: &web2llm.Result{URL: "https://example.com/about", Title: "!!!"},
			want:   "example.com_about",
		},
		{
			name:     "override wins over title",
			result:   &web2llm.Result{URL: "https://example.com/a", Title: "Real Title"},
			override: "my output",
			want:     "my-output",
		},
		{
			name:   "unparseable URL with no title",
			result: &web2llm.Result{URL: "%%%", Title: ""},
			want:   "page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.Filename(tt.result, tt.override))
		})
	}
}

func TestWriter_WriteMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("writes markdown with frontmatter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		result := &web2llm.Result{
			URL:      "https://example.com/article",
			Title:    "Test Article",
			Markdown: "# Test Article\n\nBody text.",
			Success:  true,
		}

		path, err := w.WriteMarkdown(context.Background(), result, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "Test-Article.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "source: https://example.com/article")
		assert.Contains(t, string(content), "title: Test Article")
		assert.Contains(t, string(content), "# Test Article\n\nBody text.")
	})

	t.Run("creates the output directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "out")
		w := fs.NewWriter(dir)

		result := &web2llm.Result{
			URL:      "https://example.com/a",
			Title:    "A",
			Markdown: "text",
			Success:  true,
		}

		path, err := w.WriteMarkdown(context.Background(), result, "")
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("rejects invalid results", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WriteMarkdown(context.Background(), &web2llm.Result{Title: "No URL"}, "")
		require.Error(t, err)
		assert.Equal(t, web2llm.EINVALID, web2llm.ErrorCode(err))
	})
}

func TestWriter_WriteHTML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := fs.NewWriter(dir)

	result := &web2llm.Result{
		URL:      "https://example.com/article",
		Title:    "Test Article",
		Markdown: "short",
		Success:  true,
	}

	path, err := w.WriteHTML(context.Background(), result, "<html><body><p>kept</p></body></html>", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Test-Article.html"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html><body><p>kept</p></body></html>", string(content))
}

func TestBatchStore(t *testing.T) {
	t.Parallel()

	t.Run("commit moves staged results into place", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewBatchStore(base, "run")

		result := &web2llm.Result{
			URL:      "https://example.com/a",
			Title:    "First Page",
			Markdown: "content",
			Success:  true,
		}
		require.NoError(t, store.Save(context.Background(), result, ""))

		// Nothing visible before commit
		assert.NoFileExists(t, filepath.Join(base, "run", "First-Page.md"))

		require.NoError(t, store.Commit())
		assert.FileExists(t, filepath.Join(base, "run", "First-Page.md"))
		assert.NoDirExists(t, filepath.Join(base, "run.tmp"))
	})

	t.Run("saves the HTML sibling for retained results", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewBatchStore(base, "run")

		result := &web2llm.Result{
			URL:             "https://example.com/a",
			Title:           "Tiny",
			Markdown:        "short",
			RawHTMLRetained: true,
			Success:         true,
		}
		require.NoError(t, store.Save(context.Background(), result, "<html>x</html>"))
		require.NoError(t, store.Commit())

		assert.FileExists(t, filepath.Join(base, "run", "Tiny.md"))
		assert.FileExists(t, filepath.Join(base, "run", "Tiny.html"))
	})

	t.Run("abort discards staged results", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		store := fs.NewBatchStore(base, "run")

		result := &web2llm.Result{
			URL:      "https://example.com/a",
			Title:    "Gone",
			Markdown: "content",
			Success:  true,
		}
		require.NoError(t, store.Save(context.Background(), result, ""))
		require.NoError(t, store.Abort())

		assert.NoDirExists(t, filepath.Join(base, "run.tmp"))
		assert.NoDirExists(t, filepath.Join(base, "run"))
	})

	t.Run("commit replaces a previous run", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()

		first := fs.NewBatchStore(base, "run")
		require.NoError(t, first.Save(context.Background(), &web2llm.Result{
			URL: "https://example.com/old", Title: "Old", Markdown: "old", Success: true,
		}, ""))
		require.NoError(t, first.Commit())

		second := fs.NewBatchStore(base, "run")
		require.NoError(t, second.Save(context.Background(), &web2llm.Result{
			URL: "https://example.com/new", Title: "New", Markdown: "new", Success: true,
		}, ""))
		require.NoError(t, second.Commit())

		assert.FileExists(t, filepath.Join(base, "run", "New.md"))
		assert.NoFileExists(t, filepath.Join(base, "run", "Old.md"))
	})
}
