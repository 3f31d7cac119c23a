package pagesift_test

import (
	"testing"

	"github.com/fwojciec/pagesift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLocator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases scheme and host", "HTTPS://Example.COM/Path", "https://example.com/Path"},
		{"strips default https port", "https://example.com:443/docs", "https://example.com/docs"},
		{"strips default http port", "http://example.com:80/docs", "http://example.com/docs"},
		{"keeps explicit non-default port", "http://example.com:8080/docs", "http://example.com:8080/docs"},
		{"strips fragment", "https://example.com/docs#section-2", "https://example.com/docs"},
		{"strips trailing slash", "https://example.com/docs/", "https://example.com/docs"},
		{"keeps root slash", "https://example.com/", "https://example.com/"},
		{"keeps query", "https://example.com/docs?page=2", "https://example.com/docs?page=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := pagesift.NormalizeLocator(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects non-HTTP schemes", func(t *testing.T) {
		t.Parallel()
		_, err := pagesift.NormalizeLocator("ftp://example.com/file")
		require.Error(t, err)
		assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
	})

	t.Run("rejects hostless locator", func(t *testing.T) {
		t.Parallel()
		_, err := pagesift.NormalizeLocator("https:///just-a-path")
		require.Error(t, err)
		assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
	})
}

func TestLocatorDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"registrable domain", "https://blog.example.com/post", "example.com"},
		{"country-code suffix", "https://news.example.co.uk/story", "example.co.uk"},
		{"bare host fallback", "http://localhost:8080/page", "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagesift.LocatorDomain(tt.input))
		})
	}
}

func TestLocatorKey(t *testing.T) {
	t.Parallel()

	t.Run("equivalent locators share a key", func(t *testing.T) {
		t.Parallel()

		a, err := pagesift.LocatorKey("HTTPS://Example.com/docs/")
		require.NoError(t, err)
		b, err := pagesift.LocatorKey("https://example.com/docs#intro")
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("distinct locators get distinct keys", func(t *testing.T) {
		t.Parallel()

		a, err := pagesift.LocatorKey("https://example.com/docs")
		require.NoError(t, err)
		b, err := pagesift.LocatorKey("https://example.com/blog")
		require.NoError(t, err)

		assert.NotEqual(t, a.URLHash, b.URLHash)
		assert.Equal(t, a.Domain, b.Domain)
	})

	t.Run("key string combines hash and domain", func(t *testing.T) {
		t.Parallel()

		key, err := pagesift.LocatorKey("https://blog.example.com/post")
		require.NoError(t, err)

		assert.Len(t, key.URLHash, 16)
		assert.Equal(t, "example.com", key.Domain)
		assert.Equal(t, key.URLHash+":example.com", key.String())
	})

	t.Run("invalid locator fails", func(t *testing.T) {
		t.Parallel()

		_, err := pagesift.LocatorKey("not a url")
		require.Error(t, err)
		assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
	})
}
