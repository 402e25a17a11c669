package token

import "github.com/ysulyma/stencil/internal/source"

// TriviaKind classifies non-semantic text between tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	// TriviaDocBlock is a '/** ... */' comment; the resolver turns the
	// one immediately preceding a declaration into its docs snapshot.
	TriviaDocBlock
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "space"
	case TriviaNewline:
		return "newline"
	case TriviaLineComment:
		return "line comment"
	case TriviaBlockComment:
		return "block comment"
	case TriviaDocBlock:
		return "doc block"
	}
	return "unknown trivia"
}

// Trivia is a single run of whitespace or comment text attached to the
// token that follows it.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
