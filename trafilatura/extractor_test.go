package trafilatura_test

import (
	"testing"

	web2llm "github.com/yamasammy/Web2LLM"
	"github.com/yamasammy/Web2LLM/trafilatura"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements web2llm.Extractor at compile time.
var _ web2llm.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Tides Explained - Science Weekly</title>
<meta property="og:title" content="Tides Explained">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Tides Explained</h1>
<p>This is the main content of the article page.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/science">Science</a></nav>
<article>
<h1>Ocean Currents</h1>
<p>This is important article content that should be extracted.</p>
<p>Currents redistribute heat between the equator and the poles.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "important article content")
		assert.Contains(t, result.ContentHTML, "redistribute heat")
	})

	t.Run("removes navigation and footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
</ul>
</nav>
<main>
<h1>Main Content</h1>
<p>This paragraph contains the actual content we want.</p>
</main>
<footer>
<p>Copyright 2024 Example Corp</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "actual content we want")
		assert.NotContains(t, result.ContentHTML, "main-nav")
		assert.NotContains(t, result.ContentHTML, "Copyright 2024 Example Corp")
	})

	t.Run("handles heavily templated pages", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Introduction | My Site</title>
<meta property="og:title" content="Introduction">
</head>
<body>
<nav class="navbar">
<a href="/">My Site</a>
<a href="/posts">Posts</a>
<a href="/blog">Blog</a>
</nav>
<div class="sidebar">
<ul>
<li><a href="/posts/intro">Introduction</a></li>
<li><a href="/posts/next">Next Post</a></li>
</ul>
</div>
<main class="mainContainer">
<article>
<h1>Introduction</h1>
<p>Welcome to the series. This first post sets the scene.</p>
<h2>Background</h2>
<p>Before diving in, a little history is in order.</p>
</article>
</main>
<footer class="footer">
<p>Built with a static site generator</p>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Welcome to the series")
		assert.Contains(t, result.ContentHTML, "Background")
	})

	t.Run("preserves code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Code Example</title></head>
<body>
<article>
<h1>Code Examples</h1>
<p>Here is a code example:</p>
<pre><code class="language-go">package main

import "fmt"

func main() {
    fmt.Println("Hello, World!")
}
</code></pre>
<p>And here is inline code: <code>go run main.go</code></p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "fmt.Println")
		// HTML rendering encodes quotes as &#34;
		assert.Contains(t, result.ContentHTML, "Hello, World!")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, web2llm.EINVALID, web2llm.ErrorCode(err))
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(`<html><body><p>Simple content</p></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
