package driver

import (
	"decaf/internal/diag"
	"decaf/internal/lexer"
)

// Options control a tokenize run.
type Options struct {
	// MaxIdentLen is passed to the lexer; 0 means lexer.DefaultMaxIdentLen.
	MaxIdentLen int
	// MaxDiagnostics caps each file's Bag. Errors past the cap are still counted.
	MaxDiagnostics int
	// Jobs bounds parallel scanning; 0 means GOMAXPROCS.
	Jobs int
	// Cache, when set, is consulted before scanning and filled after.
	Cache *TokenCache
	// Counter receives every error from every file. A nil Counter gets a
	// fresh one per run.
	Counter *diag.Counter
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

func (o Options) maxIdentLen() int {
	if o.MaxIdentLen <= 0 {
		return lexer.DefaultMaxIdentLen
	}
	return o.MaxIdentLen
}
