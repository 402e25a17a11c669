package sema

import (
	"testing"

	"github.com/ysulyma/stencil/internal/diag"
)

func runNaming(name string) *diag.Bag {
	bag := diag.NewBag(10)
	checkEventName(diag.BagReporter{Bag: bag}, name, nameSite{})
	return bag
}

func TestNamingRulesFireAtMostOnce(t *testing.T) {
	tests := []struct {
		name string
		code diag.Code // 0 means no finding
	}{
		// "Toggle" is also a reserved name once lowercased; only the
		// capitalization rule may fire.
		{"Toggle", diag.SemaEventNameCapitalized},
		{"OnBlur", diag.SemaEventNameCapitalized},
		{"onBlur", diag.SemaEventNameHandlerLike},
		{"onKeyDown", diag.SemaEventNameHandlerLike},
		{"click", diag.SemaEventNameReserved},
		{"cLick", diag.SemaEventNameReserved},
		// "online" starts with "on" but the next rune is lowercase, so
		// the handler rule passes and the reserved rule catches it.
		{"online", diag.SemaEventNameReserved},
		{"myClick", 0},
		{"onblur", 0},
		{"todoCompleted", 0},
		{"", 0},
	}
	for _, tt := range tests {
		bag := runNaming(tt.name)
		if tt.code == 0 {
			if bag.Len() != 0 {
				t.Errorf("%q: unexpected findings: %s", tt.name, diagnosticsSummary(bag))
			}
			continue
		}
		if bag.Len() != 1 {
			t.Errorf("%q: findings = %d, want exactly 1: %s", tt.name, bag.Len(), diagnosticsSummary(bag))
			continue
		}
		if got := bag.Items()[0].Code; got != tt.code {
			t.Errorf("%q: code = %s, want %s", tt.name, got.ID(), tt.code.ID())
		}
	}
}

func TestNamingFindingsAreWarnings(t *testing.T) {
	for _, name := range []string{"Toggle", "onBlur", "click"} {
		bag := runNaming(name)
		if bag.Len() != 1 {
			t.Fatalf("%q: findings = %d", name, bag.Len())
		}
		if sev := bag.Items()[0].Severity; sev != diag.SevWarning {
			t.Errorf("%q: severity = %v, want warning", name, sev)
		}
	}
}

func TestNamingFixSuggestions(t *testing.T) {
	tests := []struct {
		name    string
		newText string
	}{
		{"Toggle", "toggle"},
		{"onBlur", "blur"},
		{"onKeyDown", "keyDown"},
	}
	for _, tt := range tests {
		bag := runNaming(tt.name)
		if bag.Len() != 1 {
			t.Fatalf("%q: findings = %d", tt.name, bag.Len())
		}
		fixes := bag.Items()[0].Fixes
		if len(fixes) != 1 || len(fixes[0].Edits) != 1 {
			t.Fatalf("%q: fixes = %+v", tt.name, fixes)
		}
		edit := fixes[0].Edits[0]
		if edit.NewText != tt.newText {
			t.Errorf("%q: fix text = %q, want %q", tt.name, edit.NewText, tt.newText)
		}
		if edit.OldText != tt.name {
			t.Errorf("%q: fix guard = %q, want the original name", tt.name, edit.OldText)
		}
	}
}

func TestNamingFixOnQuotedSite(t *testing.T) {
	bag := diag.NewBag(10)
	checkEventName(diag.BagReporter{Bag: bag}, "onBlur", nameSite{quoted: true})
	if bag.Len() != 1 {
		t.Fatalf("findings = %d", bag.Len())
	}
	edit := bag.Items()[0].Fixes[0].Edits[0]
	if edit.NewText != `"blur"` {
		t.Errorf("quoted fix text = %q, want a quoted literal", edit.NewText)
	}
	if edit.OldText != "" {
		t.Errorf("quoted fix should not guard on decoded text, got %q", edit.OldText)
	}
}

func TestNamingReservedCollisionHasNoFix(t *testing.T) {
	bag := runNaming("click")
	if bag.Len() != 1 {
		t.Fatalf("findings = %d", bag.Len())
	}
	if fixes := bag.Items()[0].Fixes; len(fixes) != 0 {
		t.Errorf("reserved-name finding should carry no fix, got %+v", fixes)
	}
}

func TestIsReservedEventName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"click", true},
		{"CLICK", true},
		{"webkitTransitionEnd", true},
		{"mspointerdown", true},
		{"todoCompleted", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsReservedEventName(tt.name); got != tt.want {
			t.Errorf("IsReservedEventName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
