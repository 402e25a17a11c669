package diag

import (
	"testing"

	"github.com/ysulyma/stencil/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(SynUnexpectedToken, span(0, 0, 1), "one")) {
		t.Fatalf("first Add rejected")
	}
	if !b.Add(NewError(SynUnexpectedToken, span(0, 1, 2), "two")) {
		t.Fatalf("second Add rejected")
	}
	if b.Add(NewError(SynUnexpectedToken, span(0, 2, 3), "three")) {
		t.Fatalf("Add above capacity accepted")
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(8)
	b.Add(NewWarning(SemaEventNameReserved, span(0, 0, 5), "collides"))
	if b.HasErrors() {
		t.Errorf("warning-only bag reports errors")
	}
	if !b.HasWarnings() {
		t.Errorf("bag with one warning reports none")
	}
	b.Add(NewError(SynExpectSemicolon, span(0, 6, 6), "';' expected"))
	if !b.HasErrors() {
		t.Errorf("bag with one error reports none")
	}
}

func TestBagSortOrder(t *testing.T) {
	b := NewBag(8)
	b.Add(NewWarning(SemaEventNameCapitalized, span(1, 4, 5), "later file"))
	b.Add(NewWarning(SemaEventNameCapitalized, span(0, 9, 10), "later offset"))
	b.Add(NewError(SynExpectSemicolon, span(0, 2, 3), "error first at same offset"))
	b.Add(NewWarning(SemaEventNameReserved, span(0, 2, 3), "warning second"))
	b.Sort()

	items := b.Items()
	if items[0].Message != "error first at same offset" {
		t.Errorf("items[0] = %q", items[0].Message)
	}
	if items[1].Message != "warning second" {
		t.Errorf("items[1] = %q", items[1].Message)
	}
	if items[2].Message != "later offset" {
		t.Errorf("items[2] = %q", items[2].Message)
	}
	if items[3].Message != "later file" {
		t.Errorf("items[3] = %q", items[3].Message)
	}
}

func TestBagDedupAndMerge(t *testing.T) {
	a := NewBag(2)
	a.Add(NewWarning(SemaEventNameReserved, span(0, 0, 5), "same"))

	b := NewBag(2)
	b.Add(NewWarning(SemaEventNameReserved, span(0, 0, 5), "same"))
	b.Add(NewWarning(SemaEventNameReserved, span(0, 7, 12), "other"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("merged Len = %d, want 3 (capacity must grow)", a.Len())
	}
	a.Dedup()
	if a.Len() != 2 {
		t.Fatalf("deduped Len = %d, want 2", a.Len())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})
	r.Report(SemaEventNameReserved, SevWarning, span(0, 0, 5), "collides", nil, nil)
	r.Report(SemaEventNameReserved, SevWarning, span(0, 0, 5), "collides", nil, nil)
	r.Report(SemaEventNameReserved, SevWarning, span(0, 0, 5), "different text", nil, nil)
	if bag.Len() != 2 {
		t.Fatalf("bag Len = %d, want 2", bag.Len())
	}
}

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := NewBag(4)
	rb := ReportWarning(BagReporter{Bag: bag}, SemaEventNameHandlerLike, span(0, 3, 9), "looks like a handler").
		WithNote(span(0, 0, 2), "declared here").
		WithFix("rename event", TextEdit{Span: span(0, 3, 9), NewText: "blur", OldText: "onBlur"})
	rb.Emit()
	rb.Emit()

	if bag.Len() != 1 {
		t.Fatalf("bag Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || len(d.Fixes) != 1 {
		t.Fatalf("notes/fixes = %d/%d, want 1/1", len(d.Notes), len(d.Fixes))
	}
	if d.Fixes[0].Edits[0].NewText != "blur" {
		t.Errorf("fix edit NewText = %q", d.Fixes[0].Edits[0].NewText)
	}
}
