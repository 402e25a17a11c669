package diag

import (
	"fmt"
)

// Code is a compact numeric diagnostic identifier. Numeric ranges group
// codes by producing phase; ID() renders the stable string form.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000-1999)
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexNewlineInString          Code = 1005

	// Syntax (2000-2999)
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedTopLevel Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectSemicolon    Code = 2004
	SynExpectType         Code = 2005
	SynExpectExpression   Code = 2006
	SynExpectMember       Code = 2007
	SynUnclosedBrace      Code = 2008
	SynUnclosedParen      Code = 2009
	SynUnclosedBracket    Code = 2010
	SynUnclosedAngle      Code = 2011
	SynExpectColon        Code = 2012
	SynExpectFrom         Code = 2013
	SynExpectString       Code = 2014
	SynDuplicateModifier  Code = 2015

	// Semantic (3000-3999)
	SemaInfo                 Code = 3000
	SemaEventNameCapitalized Code = 3001
	SemaEventNameHandlerLike Code = 3002
	SemaEventNameReserved    Code = 3003
	SemaUnresolvedTypeRef    Code = 3004
	SemaAmbiguousTypeRef     Code = 3005
	SemaUnknownDecorator     Code = 3006
	SemaDecoratorTarget      Code = 3007
	SemaDecoratorConflict    Code = 3008
	SemaComponentTagMissing  Code = 3009
	SemaComponentTagInvalid  Code = 3010
	SemaDuplicateTypeDecl    Code = 3011

	// IO (4000-4999)
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Project (5000-5999)
	ProjManifestNotFound Code = 5001
	ProjManifestInvalid  Code = 5002
	ProjBadSourceDir     Code = 5003
	ProjDuplicateTag     Code = 5004
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInfo:                     "lexical note",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed number literal",
	LexNewlineInString:          "newline in string literal",

	SynInfo:               "syntax note",
	SynUnexpectedToken:    "unexpected token",
	SynUnexpectedTopLevel: "unexpected top-level construct",
	SynExpectIdentifier:   "identifier expected",
	SynExpectSemicolon:    "';' expected",
	SynExpectType:         "type expected",
	SynExpectExpression:   "expression expected",
	SynExpectMember:       "class member expected",
	SynUnclosedBrace:      "'}' expected",
	SynUnclosedParen:      "')' expected",
	SynUnclosedBracket:    "']' expected",
	SynUnclosedAngle:      "'>' expected",
	SynExpectColon:        "':' expected",
	SynExpectFrom:         "'from' expected",
	SynExpectString:       "string literal expected",
	SynDuplicateModifier:  "duplicate modifier",

	SemaInfo:                 "semantic note",
	SemaEventNameCapitalized: "event name starts with a capital letter",
	SemaEventNameHandlerLike: "event name looks like a handler name",
	SemaEventNameReserved:    "event name collides with a built-in DOM event",
	SemaUnresolvedTypeRef:    "unresolved type reference",
	SemaAmbiguousTypeRef:     "ambiguous type reference",
	SemaUnknownDecorator:     "unknown decorator",
	SemaDecoratorTarget:      "decorator not allowed here",
	SemaDecoratorConflict:    "conflicting decorators",
	SemaComponentTagMissing:  "component tag missing",
	SemaComponentTagInvalid:  "invalid component tag",
	SemaDuplicateTypeDecl:    "duplicate type declaration",

	IOLoadFileError:  "failed to load file",
	IOWriteFileError: "failed to write file",

	ProjManifestNotFound: "project manifest not found",
	ProjManifestInvalid:  "invalid project manifest",
	ProjBadSourceDir:     "invalid source directory",
	ProjDuplicateTag:     "duplicate component tag",
}

// ID returns the stable short form, e.g. "SEM3003".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
