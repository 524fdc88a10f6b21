package markdown_test

import (
	"testing"

	"github.com/fwojciec/docprep"
	"github.com/fwojciec/docprep/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultCleaner(t *testing.T) *markdown.Cleaner {
	t.Helper()
	c, err := markdown.NewCleaner(docprep.DefaultCleaningRules())
	require.NoError(t, err)
	return c
}

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("removes header boilerplate", func(t *testing.T) {
		t.Parallel()

		c := newDefaultCleaner(t)
		body := "![Acme logo](https://acme.io/logo.svg)\nSearch...\n⌘K\n# Title\nReal content"

		got := c.Clean(body, true)

		assert.Equal(t, "# Title\nReal content", got)
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		c := newDefaultCleaner(t)
		body := "# Title\nBody text\n\nWas this page helpful?\n\nYesNo\n[x](https://x.com/acme)\n[linkedin](https://linkedin.com/acme)"

		got := c.Clean(body, true)

		assert.Equal(t, "# Title\nBody text", got)
	})

	t.Run("removes table of contents up to the next blank line", func(t *testing.T) {
		t.Parallel()

		c := newDefaultCleaner(t)
		body := "# Title\nIntro\n\nOn this page\n* [One](#one)\n* [Two](#two)\n\nMore text"

		got := c.Clean(body, true)

		assert.Equal(t, "# Title\nIntro\n\nMore text", got)
	})

	t.Run("removes navigation links", func(t *testing.T) {
		t.Parallel()

		c := newDefaultCleaner(t)
		body := "[Welcome](/welcome) [API Guide](/api)\n# Title\ntext"

		got := c.Clean(body, true)

		assert.Equal(t, "# Title\ntext", got)
	})

	t.Run("removes named navigation sections", func(t *testing.T) {
		t.Parallel()

		c := newDefaultCleaner(t)
		body := "# Guide\nkeep\n## Models & pricing\n* [Models](/models)\n* [Pricing](/pricing)\n## Next\nkept too"

		got := c.Clean(body, true)

		assert.Equal(t, "# Guide\nkeep\n## Next\nkept too", got)
	})

	t.Run("is case sensitive", func(t *testing.T) {
		t.Parallel()

		c := newDefaultCleaner(t)

		got := c.Clean("# Title\nsearch... navigation", true)

		assert.Equal(t, "# Title\nsearch... navigation", got)
	})

	t.Run("normalizes whitespace", func(t *testing.T) {
		t.Parallel()

		c := newDefaultCleaner(t)
		body := "\n\nfirst   line\n\n\n\n*\n- \nsecond line\n\n"

		got := c.Clean(body, false)

		assert.Equal(t, "first line\n\nsecond line", got)
	})

	t.Run("never mutates code blocks with preserve structure", func(t *testing.T) {
		t.Parallel()

		c := newDefaultCleaner(t)
		code := "```go\nfunc main() {\n    // Navigation   Search...\n\n\n\n    x := 1\n}\n```"
		body := "# Title\n\n\n\nSome   text\n\n" + code + "\nafter"

		got := c.Clean(body, true)

		assert.Equal(t, "# Title\n\nSome text\n\n"+code+"\nafter", got)
	})

	t.Run("keeps code blocks spanned by a boilerplate match", func(t *testing.T) {
		t.Parallel()

		c := newDefaultCleaner(t)
		code := "```go\nfmt.Println(1)\n```"
		body := "See [docs](a).\n\n" + code + "\n\nBack to [Acme home page](/)\n"

		got := c.Clean(body, true)

		assert.Contains(t, got, code)
		assert.NotContains(t, got, "home page")
		assert.NotContains(t, got, "@@")
	})

	t.Run("keeps code blocks of removed sections", func(t *testing.T) {
		t.Parallel()

		c := newDefaultCleaner(t)
		body := "# Title\nintro\n## First steps\n```sh\nnpm i\n```\n## Next\nmore"

		got := c.Clean(body, true)

		assert.Equal(t, "# Title\nintro\n```sh\nnpm i\n```\n## Next\nmore", got)
	})

	t.Run("cleans inside code blocks without preserve structure", func(t *testing.T) {
		t.Parallel()

		c := newDefaultCleaner(t)

		got := c.Clean("```\na    b\n```", false)

		assert.Equal(t, "```\na b\n```", got)
	})

	t.Run("returns empty string for boilerplate-only input", func(t *testing.T) {
		t.Parallel()

		c := newDefaultCleaner(t)

		assert.Empty(t, c.Clean("Search...\n⌘K\n\n", true))
		assert.Empty(t, c.Clean("", true))
	})

	t.Run("applies custom rules with replacement templates", func(t *testing.T) {
		t.Parallel()

		c, err := markdown.NewCleaner([]docprep.CleaningRule{
			{Scope: docprep.ScopeNavigation, Pattern: `^Edit (\w+) on GitHub$`, Replace: "[$1]"},
		})
		require.NoError(t, err)

		assert.Equal(t, "text\n[page]", c.Clean("text\nEdit page on GitHub", true))
	})
}

func TestNewCleaner(t *testing.T) {
	t.Parallel()

	_, err := markdown.NewCleaner([]docprep.CleaningRule{{Scope: docprep.ScopeHeader, Pattern: "("}})

	require.Error(t, err)
	assert.Equal(t, docprep.EINVALID, docprep.ErrorCode(err))
}
