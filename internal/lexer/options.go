package lexer

import "decaf/internal/diag"

// DefaultMaxIdentLen is the classic Decaf identifier limit.
const DefaultMaxIdentLen = 31

type Options struct {
	// Reporter может быть nil: тогда ошибки игнорируем (но продолжаем лексить).
	Reporter diag.Reporter
	// MaxIdentLen bounds identifier length; 0 means DefaultMaxIdentLen.
	MaxIdentLen int
}

func (o Options) maxIdentLen() int {
	if o.MaxIdentLen <= 0 {
		return DefaultMaxIdentLen
	}
	return o.MaxIdentLen
}

func (lx *Lexer) report(d diag.Diagnostic) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(d)
	}
}
