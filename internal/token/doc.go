// Package token defines lexical token kinds and trivia for component sources.
// Invariants:
//   - Token.Span matches Text exactly (Start..End).
//   - Decorators are lexed as '@' (Kind: At) + Ident; no per-decorator token kinds.
//   - Doc comments (/** ... */) are leading Trivia (TriviaDocBlock) and never
//     appear in the main token stream.
//   - Built-in type names (string, number, boolean, any, void) are identifiers.
//     They are recognized by the type layer, not the lexer.
package token
