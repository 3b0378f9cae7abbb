package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.decaf", []byte("hello world"), 0)
	id2 := fs.Add("test.decaf", []byte("hello universe"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("expected ids 0 and 1, got %d and %d", id1, id2)
	}

	latest, ok := fs.GetLatest("test.decaf")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latest, ok, id2)
	}
	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("first version content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestLookupOutOfRange(t *testing.T) {
	fs := NewFileSet()
	if _, ok := fs.Lookup(3); ok {
		t.Fatal("Lookup on empty set must fail")
	}
	id := fs.AddVirtual("a.decaf", nil)
	if f, ok := fs.Lookup(id); !ok || f.Flags&FileVirtual == 0 {
		t.Fatalf("Lookup(%d) = %v, %v", id, f, ok)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.decaf", []byte("ab\ncd\n\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the '\n' belongs to line 1
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{9, LineCol{4, 3}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestResolveLocation(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.decaf", []byte("int x;\n  foo"))

	loc := fs.ResolveLocation(Span{File: id, Start: 9, End: 12})
	want := Location{First: LineCol{2, 3}, Last: LineCol{2, 5}}
	if loc != want {
		t.Fatalf("got %+v, want %+v", loc, want)
	}

	empty := fs.ResolveLocation(Span{File: id, Start: 12, End: 12})
	if empty.First != empty.Last || empty.First != (LineCol{2, 6}) {
		t.Fatalf("empty span resolved to %+v", empty)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("l.decaf", []byte("first\nsecond\n")))

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, ""},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.decaf")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFint a;\r\nint b;\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "int a;\nint b;\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
	if len(f.LineIdx) != 2 {
		t.Errorf("LineIdx = %v", f.LineIdx)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.decaf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFormatPath(t *testing.T) {
	f := &File{Path: "/home/user/project/src/main.decaf"}

	if got := f.FormatPath("basename", ""); got != "main.decaf" {
		t.Errorf("basename = %q", got)
	}
	if got := f.FormatPath("relative", "/home/user/project"); got != "src/main.decaf" {
		t.Errorf("relative = %q", got)
	}
	if got := f.FormatPath("relative", "/elsewhere"); got != "/home/user/project/src/main.decaf" {
		t.Errorf("relative outside base = %q", got)
	}
	if got := f.FormatPath("", ""); got != f.Path {
		t.Errorf("default = %q", got)
	}
}
