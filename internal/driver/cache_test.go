package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decaf/internal/source"
	"decaf/internal/token"
)

func TestTokenCacheRoundTrip(t *testing.T) {
	cache, err := OpenTokenCache(t.TempDir())
	require.NoError(t, err)

	src := "#define N 3\nint x; // c\n\"open\n@\n/* tail"
	path := writeSource(t, t.TempDir(), "c.decaf", src)
	opts := Options{Cache: cache}

	first, err := Tokenize(context.Background(), path, opts)
	require.NoError(t, err)
	require.False(t, first.Files[0].Cached)

	second, err := Tokenize(context.Background(), path, opts)
	require.NoError(t, err)
	require.True(t, second.Files[0].Cached)

	a, b := first.Files[0], second.Files[0]
	require.Equal(t, len(a.Tokens), len(b.Tokens))
	for i := range a.Tokens {
		assert.Equal(t, a.Tokens[i].Kind, b.Tokens[i].Kind)
		assert.Equal(t, a.Tokens[i].Text, b.Tokens[i].Text)
		assert.Equal(t, a.Tokens[i].Loc, b.Tokens[i].Loc)
		assert.Equal(t, a.Tokens[i].Span.Start, b.Tokens[i].Span.Start)
		assert.Equal(t, len(a.Tokens[i].Leading), len(b.Tokens[i].Leading))
	}
	assert.Equal(t, map[string]string{"N": "3"}, b.Defines)
	assert.Equal(t, first.Errors(), second.Errors())
	assert.Equal(t, 3, second.Errors())
	assert.Equal(t, a.Bag.Items()[0].Message, b.Bag.Items()[0].Message)

	// заметка о незакрытом комментарии переживает кэш
	last := b.Bag.Items()[2]
	require.Len(t, last.Notes, 1)
	assert.Equal(t, a.Bag.Items()[2].Notes[0].Msg, last.Notes[0].Msg)
	assert.Equal(t, b.FileID, last.Notes[0].Span.File)
}

func TestTokenCacheKeyDependsOnIdentLimit(t *testing.T) {
	var h [32]byte
	assert.NotEqual(t, CacheKey(h, 31), CacheKey(h, 256))
	assert.Equal(t, CacheKey(h, 31), CacheKey(h, 31))
}

func TestTokenCacheMissAndCorrupt(t *testing.T) {
	cache, err := OpenTokenCache(t.TempDir())
	require.NoError(t, err)

	var key Key
	key[0] = 0xab
	_, ok, err := cache.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)

	p := cache.pathFor(key)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte{0xc1}, 0o600))
	_, ok, err = cache.Get(key)
	assert.Error(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.DropAll())
	_, err = os.Stat(p)
	assert.True(t, os.IsNotExist(err))
}

func TestCacheEntryRebindsFile(t *testing.T) {
	toks := []token.Token{{
		Kind: token.Ident,
		Span: source.Span{File: 7, Start: 1, End: 2},
		Loc:  source.PointLocation(source.LineCol{Line: 1, Col: 2}),
		Text: "x",
		Leading: []token.Trivia{{
			Kind: token.TriviaSpace,
			Span: source.Span{File: 7, Start: 0, End: 1},
			Text: " ",
		}},
	}}
	entry := newCacheEntry(toks, nil, nil)

	got, defines := entry.Restore(3, nil)
	require.Len(t, got, 1)
	assert.Equal(t, source.FileID(3), got[0].Span.File)
	assert.Equal(t, source.FileID(3), got[0].Leading[0].Span.File)
	assert.NotNil(t, defines)
}
