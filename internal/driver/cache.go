package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"decaf/internal/diag"
	"decaf/internal/source"
	"decaf/internal/token"
)

// Current schema version - increment when CacheEntry format changes
const tokenCacheSchemaVersion uint16 = 2

// Key identifies a scan result: file content hash plus the options that
// change the token stream.
type Key [sha256.Size]byte

// CacheKey derives the cache key for a file hash and identifier limit.
func CacheKey(fileHash [sha256.Size]byte, maxIdentLen int) Key {
	h := sha256.New()
	limit, err := safecast.Conv[uint64](maxIdentLen)
	if err != nil {
		limit = 0
	}
	var buf [10]byte
	binary.LittleEndian.PutUint16(buf[:2], tokenCacheSchemaVersion)
	binary.LittleEndian.PutUint64(buf[2:], limit)
	_, _ = h.Write(buf[:])
	_, _ = h.Write(fileHash[:])
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

// TokenCache хранит результаты сканирования на диске в msgpack.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenTokenCache opens (creating if needed) a cache rooted at dir. An empty
// dir means $XDG_CACHE_HOME/decaf or ~/.cache/decaf.
func OpenTokenCache(dir string) (*TokenCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to locate cache dir: %w", err)
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "decaf")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &TokenCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *TokenCache) Dir() string { return c.dir }

func (c *TokenCache) pathFor(key Key) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первым двум символам, чтобы не раздувать один каталог
	return filepath.Join(c.dir, "tokens", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes an entry, replacing any previous one atomically.
func (c *TokenCache) Put(key Key, entry *CacheEntry) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(entry); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads an entry. A missing entry or one written by another schema
// version reports ok=false without error.
func (c *TokenCache) Get(key Key) (*CacheEntry, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var entry CacheEntry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry: %w", err)
	}
	if entry.Schema != tokenCacheSchemaVersion {
		return nil, false, nil
	}
	return &entry, true, nil
}

// DropAll removes every cached entry.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "tokens"))
}

// CacheEntry is the on-disk form of one file's scan. Spans are stored
// without FileID, which is rebound on load.
type CacheEntry struct {
	Schema      uint16            `msgpack:"v"`
	Tokens      []cachedToken     `msgpack:"t"`
	Defines     map[string]string `msgpack:"d,omitempty"`
	Diagnostics []cachedDiag      `msgpack:"g,omitempty"`
}

type cachedLoc struct {
	FirstLine, FirstCol uint32
	LastLine, LastCol   uint32
	LineOnly            bool
}

type cachedToken struct {
	Kind       uint8
	Start, End uint32
	Loc        cachedLoc
	Text       string
	Leading    []cachedTrivia `msgpack:",omitempty"`
}

type cachedTrivia struct {
	Kind       uint8
	Start, End uint32
	Text       string
	Directive  *token.Directive `msgpack:",omitempty"`
}

type cachedDiag struct {
	Severity   uint8
	Code       uint16
	Message    string
	Start, End uint32
	Loc        *cachedLoc   `msgpack:",omitempty"`
	Notes      []cachedNote `msgpack:",omitempty"`
}

type cachedNote struct {
	Start, End uint32
	Msg        string
}

func toCachedLoc(l source.Location) cachedLoc {
	return cachedLoc{
		FirstLine: l.First.Line, FirstCol: l.First.Col,
		LastLine: l.Last.Line, LastCol: l.Last.Col,
		LineOnly: l.LineOnly,
	}
}

func (c cachedLoc) location() source.Location {
	return source.Location{
		First:    source.LineCol{Line: c.FirstLine, Col: c.FirstCol},
		Last:     source.LineCol{Line: c.LastLine, Col: c.LastCol},
		LineOnly: c.LineOnly,
	}
}

func newCacheEntry(tokens []token.Token, defines map[string]string, diags []diag.Diagnostic) *CacheEntry {
	e := &CacheEntry{
		Schema:  tokenCacheSchemaVersion,
		Tokens:  make([]cachedToken, len(tokens)),
		Defines: defines,
	}
	for i, tok := range tokens {
		ct := cachedToken{
			Kind:  uint8(tok.Kind),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Loc:   toCachedLoc(tok.Loc),
			Text:  tok.Text,
		}
		if len(tok.Leading) > 0 {
			ct.Leading = make([]cachedTrivia, len(tok.Leading))
			for j, tv := range tok.Leading {
				ct.Leading[j] = cachedTrivia{
					Kind:      uint8(tv.Kind),
					Start:     tv.Span.Start,
					End:       tv.Span.End,
					Text:      tv.Text,
					Directive: tv.Directive,
				}
			}
		}
		e.Tokens[i] = ct
	}
	for _, d := range diags {
		cd := cachedDiag{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		if d.Loc != nil {
			l := toCachedLoc(*d.Loc)
			cd.Loc = &l
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, cachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		e.Diagnostics = append(e.Diagnostics, cd)
	}
	return e
}

// Restore rebuilds tokens for file and replays cached diagnostics into r,
// so counters see the same errors as a fresh scan.
func (e *CacheEntry) Restore(file source.FileID, r diag.Reporter) ([]token.Token, map[string]string) {
	tokens := make([]token.Token, len(e.Tokens))
	for i, ct := range e.Tokens {
		tok := token.Token{
			Kind: token.Kind(ct.Kind),
			Span: source.Span{File: file, Start: ct.Start, End: ct.End},
			Loc:  ct.Loc.location(),
			Text: ct.Text,
		}
		if len(ct.Leading) > 0 {
			tok.Leading = make([]token.Trivia, len(ct.Leading))
			for j, tv := range ct.Leading {
				tok.Leading[j] = token.Trivia{
					Kind:      token.TriviaKind(tv.Kind),
					Span:      source.Span{File: file, Start: tv.Start, End: tv.End},
					Text:      tv.Text,
					Directive: tv.Directive,
				}
			}
		}
		tokens[i] = tok
	}

	for _, cd := range e.Diagnostics {
		var loc *source.Location
		if cd.Loc != nil {
			l := cd.Loc.location()
			loc = &l
		}
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code),
			source.Span{File: file, Start: cd.Start, End: cd.End}, loc, cd.Message)
		for _, n := range cd.Notes {
			d = d.WithNote(source.Span{File: file, Start: n.Start, End: n.End}, n.Msg)
		}
		r.Report(d)
	}

	defines := e.Defines
	if defines == nil {
		defines = make(map[string]string)
	}
	return tokens, defines
}
