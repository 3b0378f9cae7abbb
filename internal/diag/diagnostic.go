package diag

import (
	"decaf/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding. Loc is nil for diagnostics that are not tied
// to a position (the classic output then prints "*** Error.").
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Loc      *source.Location
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, loc *source.Location, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Loc:      loc,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, loc *source.Location, msg string) Diagnostic {
	return New(SevError, code, primary, loc, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// Line returns the reported line, 0 when the diagnostic has no location.
func (d Diagnostic) Line() uint32 {
	if d.Loc == nil {
		return 0
	}
	return d.Loc.Line()
}
