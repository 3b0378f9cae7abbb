package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decaf/internal/diag"
	"decaf/internal/token"
	"decaf/internal/trace"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeSingleFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.decaf", "int x;\n@\n")

	res, err := Tokenize(context.Background(), path, Options{})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)

	f := res.Files[0]
	assert.Equal(t, []token.Kind{token.KwInt, token.Ident, token.Semicolon, token.EOF}, kinds(f.Tokens))
	assert.Equal(t, 1, res.Errors())
	require.Equal(t, 1, f.Bag.Len())
	assert.Equal(t, diag.LexUnrecognizedChar, f.Bag.Items()[0].Code)
}

func TestTokenizeFilesSharesCounterAndKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, src := range []string{"a b", "\"open", "$ $", "ok"} {
		paths = append(paths, writeSource(t, dir, string(rune('a'+i))+".decaf", src))
	}

	counter := &diag.Counter{}
	res, err := TokenizeFiles(context.Background(), paths, Options{Jobs: 3, Counter: counter})
	require.NoError(t, err)

	assert.Same(t, counter, res.Counter)
	assert.Equal(t, 3, counter.Load())
	for i, f := range res.Files {
		assert.Equal(t, paths[i], f.Path)
	}
	assert.Equal(t, 0, res.Files[0].Bag.Len())
	assert.Equal(t, 2, res.Files[2].Bag.Len())
}

func TestTokenizeMissingFile(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.decaf", "x")
	missing := filepath.Join(dir, "missing.decaf")

	res, err := TokenizeFiles(context.Background(), []string{missing, good}, Options{})
	require.NoError(t, err)

	assert.Error(t, res.Files[0].LoadErr)
	assert.Nil(t, res.Files[0].Tokens)
	require.Equal(t, 1, res.Files[0].Bag.Len())
	assert.Equal(t, diag.IOLoadFileError, res.Files[0].Bag.Items()[0].Code)
	assert.Equal(t, []token.Kind{token.Ident, token.EOF}, kinds(res.Files[1].Tokens))
	assert.Equal(t, 1, res.Errors())
}

func TestTokenizeDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.decaf", "b")
	writeSource(t, dir, "sub/a.decaf", "a")
	writeSource(t, dir, "notes.txt", "@@@")

	res, err := TokenizeDir(context.Background(), dir, Options{})
	require.NoError(t, err)
	require.Len(t, res.Files, 2)
	assert.True(t, strings.HasSuffix(res.Files[0].Path, "b.decaf"))
	assert.True(t, strings.HasSuffix(res.Files[1].Path, filepath.Join("sub", "a.decaf")))
	assert.Equal(t, 0, res.Errors())
}

func TestMaxDiagnosticsStillCounts(t *testing.T) {
	path := writeSource(t, t.TempDir(), "many.decaf", "@ @ @ @ @")
	res, err := Tokenize(context.Background(), path, Options{MaxDiagnostics: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Files[0].Bag.Len())
	assert.Equal(t, 3, res.Files[0].Bag.Dropped())
	assert.Equal(t, 5, res.Errors())
}

func TestTokenizeCancelled(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.decaf", "x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Tokenize(ctx, path, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenizeTraces(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.decaf", "x y")
	ring := trace.NewRingTracer(32, trace.LevelDetail)
	ctx := trace.WithTracer(context.Background(), ring)

	_, err := Tokenize(ctx, path, Options{})
	require.NoError(t, err)

	var names []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanEnd {
			names = append(names, ev.Name)
			if ev.Name == path {
				assert.Equal(t, "3", ev.Extra["tokens"])
			}
		}
	}
	assert.Equal(t, []string{path, "tokenize"}, names)
}
