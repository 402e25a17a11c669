package fix

import (
	"testing"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/source"
)

func TestInsertTextDefaults(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.stc", []byte("bubbles: true"))

	span := source.Span{File: fileID, Start: 0, End: 0}
	fix := InsertText("insert option", span, "composed: true, ", "")

	if fix.Kind != diag.FixQuickFix {
		t.Errorf("expected quickfix kind, got %v", fix.Kind)
	}
	if fix.Applicability != diag.ApplicabilityAlwaysSafe {
		t.Errorf("expected always-safe applicability, got %v", fix.Applicability)
	}
	if fix.IsPreferred {
		t.Error("expected IsPreferred to default to false")
	}
	if len(fix.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(fix.Edits))
	}
	if fix.Edits[0].NewText != "composed: true, " {
		t.Errorf("unexpected NewText %q", fix.Edits[0].NewText)
	}
}

func TestDeleteSpanKeepsGuard(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.stc", []byte("@Event() @Prop()"))

	span := source.Span{File: fileID, Start: 9, End: 16}
	fix := DeleteSpan("remove extra decorator", span, "@Prop()")

	if len(fix.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(fix.Edits))
	}
	edit := fix.Edits[0]
	if edit.NewText != "" {
		t.Errorf("expected empty NewText for deletion, got %q", edit.NewText)
	}
	if edit.OldText != "@Prop()" {
		t.Errorf("expected OldText '@Prop()', got %q", edit.OldText)
	}
}

func TestReplaceSpanFields(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.stc", []byte("OnBlur"))

	span := source.Span{File: fileID, Start: 0, End: 6}
	fix := ReplaceSpan("rename to 'blur'", span, "blur", "OnBlur")

	if len(fix.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(fix.Edits))
	}
	edit := fix.Edits[0]
	if edit.NewText != "blur" {
		t.Errorf("expected NewText 'blur', got %q", edit.NewText)
	}
	if edit.OldText != "OnBlur" {
		t.Errorf("expected OldText 'OnBlur', got %q", edit.OldText)
	}
}

func TestWrapWithProducesTwoEdits(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.stc", []byte("open | done"))

	span := source.Span{File: fileID, Start: 0, End: 11}
	fix := WrapWith("wrap in parentheses", span, "(", ")")

	if fix.Kind != diag.FixRewrite {
		t.Errorf("expected rewrite kind, got %v", fix.Kind)
	}
	if fix.Applicability != diag.ApplicabilitySafeWithHeuristics {
		t.Errorf("expected safe-with-heuristics applicability, got %v", fix.Applicability)
	}
	if len(fix.Edits) != 2 {
		t.Fatalf("expected 2 edits (prefix and suffix), got %d", len(fix.Edits))
	}
	if fix.Edits[0].NewText != "(" {
		t.Errorf("expected prefix '(', got %q", fix.Edits[0].NewText)
	}
	if fix.Edits[0].Span.Start != 0 || fix.Edits[0].Span.End != 0 {
		t.Errorf("prefix edit should be an insertion at span start, got %+v", fix.Edits[0].Span)
	}
	if fix.Edits[1].NewText != ")" {
		t.Errorf("expected suffix ')', got %q", fix.Edits[1].NewText)
	}
	if fix.Edits[1].Span.Start != 11 || fix.Edits[1].Span.End != 11 {
		t.Errorf("suffix edit should be an insertion at span end, got %+v", fix.Edits[1].Span)
	}
}

func TestMultipleOptions(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.stc", []byte("Toggle"))

	span := source.Span{File: fileID, Start: 0, End: 6}
	fix := ReplaceSpan(
		"rename to 'toggle'",
		span,
		"toggle",
		"Toggle",
		Preferred(),
		WithID("custom-id"),
		WithKind(diag.FixRefactor),
		WithApplicability(diag.ApplicabilitySafeWithHeuristics),
	)

	if !fix.IsPreferred {
		t.Error("expected IsPreferred to be true")
	}
	if fix.ID != "custom-id" {
		t.Errorf("expected ID 'custom-id', got %q", fix.ID)
	}
	if fix.Kind != diag.FixRefactor {
		t.Errorf("expected Kind FixRefactor, got %v", fix.Kind)
	}
	if fix.Applicability != diag.ApplicabilitySafeWithHeuristics {
		t.Errorf("expected Applicability SafeWithHeuristics, got %v", fix.Applicability)
	}
}

func TestNilOptionIgnored(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.stc", []byte("Toggle"))

	span := source.Span{File: fileID, Start: 0, End: 6}
	fix := ReplaceSpan("rename to 'toggle'", span, "toggle", "Toggle", nil, Preferred())

	if !fix.IsPreferred {
		t.Error("expected IsPreferred to be true despite nil option")
	}
}
