package sema

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/fix"
	"github.com/ysulyma/stencil/internal/source"
)

// nameSite says where a computed event name was written, so rename
// fixes can target either the member identifier or the eventName
// string literal.
type nameSite struct {
	span source.Span
	// quoted is set when the name sits inside a string literal; the
	// rename edit then has to rewrite the whole literal.
	quoted bool
}

func (s nameSite) renameFix(current, replacement string) diag.Fix {
	title := "rename to '" + replacement + "'"
	if s.quoted {
		// The literal span covers the quotes and the name was decoded,
		// so rewrite the whole literal without an OldText guard.
		return fix.ReplaceSpan(title, s.span, `"`+replacement+`"`, "", fix.Preferred())
	}
	return fix.ReplaceSpan(title, s.span, replacement, current, fix.Preferred())
}

// checkEventName classifies a computed public event name against the
// naming rules. The rules are ordered and short-circuit: at most one
// finding fires per name, and a hit on an earlier rule suppresses the
// later ones. Accumulating all applicable findings would change
// observable diagnostic counts, so keep the short circuit.
//
// Every finding is a warning; a bad name never blocks extraction.
func checkEventName(reporter diag.Reporter, name string, site nameSite) {
	if name == "" {
		return
	}

	first, firstSize := utf8.DecodeRuneInString(name)

	// Capitalized names break the lowercase listener convention:
	// `addEventListener("Toggle", ...)` is almost always a typo for
	// the lowercase form.
	if unicode.IsUpper(first) {
		lowered := string(unicode.ToLower(first)) + name[firstSize:]
		diag.ReportWarning(reporter, diag.SemaEventNameCapitalized, site.span,
			"event name '"+name+"' starts with a capital letter").
			WithFixSuggestion(site.renameFix(name, lowered)).
			Emit()
		return
	}

	// on-prefixed names describe the handler, not the event: listeners
	// end up attached as `onOnBlur`.
	if rest, ok := strings.CutPrefix(name, "on"); ok && rest != "" {
		restFirst, restSize := utf8.DecodeRuneInString(rest)
		if unicode.IsUpper(restFirst) {
			stripped := string(unicode.ToLower(restFirst)) + rest[restSize:]
			diag.ReportWarning(reporter, diag.SemaEventNameHandlerLike, site.span,
				"event name '"+name+"' looks like a handler name; name the event itself").
				WithFixSuggestion(site.renameFix(name, stripped)).
				Emit()
			return
		}
	}

	if IsReservedEventName(name) {
		diag.ReportWarning(reporter, diag.SemaEventNameReserved, site.span,
			"event name '"+name+"' collides with the built-in '"+strings.ToLower(name)+"' event").
			Emit()
		return
	}
}
