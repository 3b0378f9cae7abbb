package token

var keywords = map[string]Kind{
	"void":        KwVoid,
	"int":         KwInt,
	"double":      KwDouble,
	"bool":        KwBool,
	"string":      KwString,
	"class":       KwClass,
	"interface":   KwInterface,
	"this":        KwThis,
	"extends":     KwExtends,
	"implements":  KwImplements,
	"for":         KwFor,
	"while":       KwWhile,
	"if":          KwIf,
	"else":        KwElse,
	"return":      KwReturn,
	"break":       KwBreak,
	"New":         KwNew,
	"NewArray":    KwNewArray,
	"Print":       KwPrint,
	"ReadInteger": KwReadInteger,
	"ReadLine":    KwReadLine,
	"null":        NullLit,
	"true":        BoolLit,
	"false":       BoolLit,
}

// LookupKeyword returns the kind for a reserved word.
// Lookup is case-sensitive: "New" is a keyword, "new" is an identifier.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Keywords returns a copy of the reserved word table.
func Keywords() map[string]Kind {
	out := make(map[string]Kind, len(keywords))
	for w, k := range keywords {
		out[w] = k
	}
	return out
}
