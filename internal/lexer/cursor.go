package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"decaf/internal/source"
)

// Cursor is the scan position inside one file: byte offset plus the
// 1-based line and column of the next character to be consumed.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32
	Col  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32

	last source.LineCol // position of the last consumed character
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Line:  1,
		Col:   1,
		Limit: limit,
		last:  source.LineCol{Line: 1, Col: 1},
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekAt returns the byte n positions ahead of the cursor, or 0 past the end.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.Limit {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// Peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Peek3 читает три байта вперёд.
func (c *Cursor) Peek3() (b0, b1, b2 byte, ok bool) {
	if c.Off+2 >= c.Limit {
		return 0, 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], c.File.Content[c.Off+2], true
}

// Bump consumes one byte and returns it; at EOF it returns 0 and does nothing.
// A newline moves to column 1 of the next line; UTF-8 continuation bytes
// do not advance the column, so columns count characters.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	if b&0xC0 == 0x80 {
		return b
	}
	c.last = source.LineCol{Line: c.Line, Col: c.Col}
	if b == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col++
	}
	return b
}

// BumpN consumes n bytes.
func (c *Cursor) BumpN(n int) {
	for i := 0; i < n; i++ {
		c.Bump()
	}
}

// BumpRune consumes one UTF-8 character and returns it. Invalid
// encodings are consumed one byte at a time as utf8.RuneError, and each
// such byte takes one column.
func (c *Cursor) BumpRune() rune {
	if c.EOF() {
		return utf8.RuneError
	}
	r, size := utf8.DecodeRune(c.File.Content[c.Off:c.Limit])
	if r == utf8.RuneError && size == 1 {
		// Bump не двигает колонку на continuation-байтах
		c.last = c.Pos()
		c.Off++
		c.Col++
		return r
	}
	c.BumpN(size)
	return r
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Bump()
		return true
	}
	return false
}

// Pos returns the position of the next character.
func (c *Cursor) Pos() source.LineCol {
	return source.LineCol{Line: c.Line, Col: c.Col}
}

// Mark это метка, чтобы быстро получать Span и Location читаемого фрагмента
type Mark struct {
	off  uint32
	pos  source.LineCol
	last source.LineCol
}

// Offset returns the byte offset captured by the mark.
func (m Mark) Offset() uint32 { return m.off }

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, pos: c.Pos(), last: c.last}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = m.off
	c.Line = m.pos.Line
	c.Col = m.pos.Col
	c.last = m.last
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: m.off,
		End:   c.Off,
	}
}

// LocFrom returns the inclusive line/column range consumed since the mark.
func (c *Cursor) LocFrom(m Mark) source.Location {
	if c.Off == m.off {
		return source.PointLocation(m.pos)
	}
	return source.NewLocation(m.pos, c.last)
}

// Text returns the source consumed since the mark.
func (c *Cursor) Text(m Mark) string {
	return string(c.File.Content[m.off:c.Off])
}
