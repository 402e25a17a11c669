package token

var keywords = map[string]Kind{
	"class":      KwClass,
	"interface":  KwInterface,
	"type":       KwType,
	"import":     KwImport,
	"from":       KwFrom,
	"export":     KwExport,
	"extends":    KwExtends,
	"implements": KwImplements,
	"readonly":   KwReadonly,
	"static":     KwStatic,
	"declare":    KwDeclare,
	"true":       BoolLit,
	"false":      BoolLit,
	"null":       NullLit,
}

// LookupKeyword reports whether ident is a reserved word. Keywords are
// case-sensitive; only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
