package diagfmt

import (
	"decaf/internal/diag"
	"decaf/internal/source"
)

// locate returns the best location for d: its own Location when set,
// otherwise the primary span resolved through fs.
func locate(d *diag.Diagnostic, fs *source.FileSet) (source.Location, bool) {
	if d.Loc != nil {
		return *d.Loc, true
	}
	if fs == nil {
		return source.Location{}, false
	}
	if f, ok := fs.Lookup(d.Primary.File); !ok || f.Flags&source.FileUnreadable != 0 {
		return source.Location{}, false
	}
	return fs.ResolveLocation(d.Primary), true
}

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	if fs == nil {
		return ""
	}
	f, ok := fs.Lookup(id)
	if !ok {
		return ""
	}
	return f.FormatPath(mode.String(), fs.BaseDir())
}
