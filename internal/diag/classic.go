package diag

import (
	"io"
	"strconv"

	"decaf/internal/source"
)

// WriteClassic writes one diagnostic in the traditional two-line form:
//
//	*** Error line 4.
//	*** Unrecognized char: '@'
//
// preceded and followed by a blank line. Diagnostics without a location
// print "*** Error." instead of the line header.
func WriteClassic(w io.Writer, loc *source.Location, msg string) error {
	buf := make([]byte, 0, len(msg)+32)
	buf = append(buf, '\n')
	if loc != nil {
		buf = append(buf, "*** Error line "...)
		buf = strconv.AppendUint(buf, uint64(loc.Line()), 10)
		buf = append(buf, ".\n"...)
	} else {
		buf = append(buf, "*** Error.\n"...)
	}
	buf = append(buf, "*** "...)
	buf = append(buf, msg...)
	buf = append(buf, "\n\n"...)
	_, err := w.Write(buf)
	return err
}
