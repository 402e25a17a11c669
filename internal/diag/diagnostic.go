package diag

import (
	"github.com/ysulyma/stencil/internal/source"
)

// Note attaches secondary context to a diagnostic. Each note should add
// new information, not restate the message.
type Note struct {
	Span source.Span
	Msg  string
}

// TextEdit is one concrete replacement inside a file. OldText, when
// non-empty, is a guard: the fix engine refuses the edit if the span no
// longer holds that text.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// FixKind is a coarse classification of a fix suggestion.
type FixKind uint8

const (
	FixQuickFix FixKind = iota
	FixRefactor
	FixRewrite
)

func (k FixKind) String() string {
	switch k {
	case FixQuickFix:
		return "quickfix"
	case FixRefactor:
		return "refactor"
	case FixRewrite:
		return "rewrite"
	}
	return "unknown"
}

// FixApplicability states how confidently a fix can be applied without
// human review.
type FixApplicability uint8

const (
	ApplicabilityAlwaysSafe FixApplicability = iota
	ApplicabilitySafeWithHeuristics
	ApplicabilityManualReview
)

func (a FixApplicability) String() string {
	switch a {
	case ApplicabilityAlwaysSafe:
		return "always-safe"
	case ApplicabilitySafeWithHeuristics:
		return "safe-with-heuristics"
	case ApplicabilityManualReview:
		return "manual-review"
	}
	return "unknown"
}

// Fix is a data-only automated correction attached to a diagnostic.
type Fix struct {
	ID            string
	Title         string
	Kind          FixKind
	Applicability FixApplicability
	IsPreferred   bool
	Edits         []TextEdit
}

// Diagnostic is the central finding record shared by all phases.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
