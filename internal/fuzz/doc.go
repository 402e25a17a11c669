// Package fuzztests houses Go fuzz harnesses that exercise the early
// compilation pipeline (source -> lexer -> parser). Its goal is to
// smoke test robustness and guard against panics or hangs on arbitrary
// inputs, especially around error recovery in broken decorator and
// class syntax.
package fuzztests
