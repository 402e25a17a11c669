package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/source"
)

// Pretty renders diagnostics for humans. It walks bag.Items() (call
// bag.Sort() beforehand) and prints for each one:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line with a ^~~~ underline, optional
// surrounding context lines, and then notes, fixes and previews when
// the corresponding options are set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printDiagnostic(w, d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, end := fs.Resolve(d.Primary)
	path := formatPath(fs, d.Primary.File, opts.PathMode)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col,
		severityText(d.Severity, opts.Color), d.Code.ID(), d.Message)

	printSnippet(w, fs, d.Primary, start, end, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			notePath := formatPath(fs, note.Span.File, opts.PathMode)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", notePath, noteStart.Line, noteStart.Col, note.Msg)
		}
	}

	if opts.ShowFixes && len(d.Fixes) > 0 {
		printFixes(w, fs, sortedFixes(d.Fixes), opts)
	}
}

// printSnippet prints the primary source line with its underline, plus
// opts.Context lines above and below.
func printSnippet(w io.Writer, fs *source.FileSet, span source.Span, start, end source.LineCol, opts PrettyOpts) {
	file := fs.Get(span.File)
	if file == nil || len(file.Content) == 0 {
		return
	}

	lineCount := uint32(len(file.LineIdx)) + 1
	if file.Content[len(file.Content)-1] == '\n' {
		lineCount--
	}

	context := uint32(0)
	if opts.Context > 0 {
		context = uint32(opts.Context)
	}
	firstLine := start.Line
	if firstLine > context {
		firstLine -= context
	} else {
		firstLine = 1
	}
	lastLine := min(start.Line+context, lineCount)

	for line := firstLine; line <= lastLine; line++ {
		text := file.GetLine(line)
		fmt.Fprintf(w, "%5d | %s\n", line, clipLine(text, opts.Width))
		if line == start.Line {
			printUnderline(w, text, start, end, opts)
		}
	}
}

// printUnderline emits the ^~~~ marker under the span. For multi-line
// spans the underline runs to the end of the first line.
func printUnderline(w io.Writer, text string, start, end source.LineCol, opts PrettyOpts) {
	startCol := int(start.Col)
	if startCol < 1 {
		startCol = 1
	}

	length := 1
	switch {
	case end.Line == start.Line && int(end.Col) > startCol:
		length = int(end.Col) - startCol
	case end.Line > start.Line:
		length = len(text) - startCol + 1
	}
	if rest := len(text) - startCol + 1; length > rest && rest > 0 {
		length = rest
	}
	if length < 1 {
		length = 1
	}

	// Tabs in the prefix keep their width so the marker stays aligned.
	var pad strings.Builder
	for i, r := range text {
		if i >= startCol-1 {
			break
		}
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}

	marker := "^" + strings.Repeat("~", length-1)
	if opts.Color {
		marker = color.New(color.FgHiRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "      | %s%s\n", pad.String(), marker)
}

func printFixes(w io.Writer, fs *source.FileSet, fixes []diag.Fix, opts PrettyOpts) {
	for i, fix := range fixes {
		var attrs []string
		attrs = append(attrs, fix.Kind.String(), fix.Applicability.String())
		if fix.IsPreferred {
			attrs = append(attrs, "preferred")
		}
		fmt.Fprintf(w, "  fix #%d: %s (%s)", i+1, fix.Title, strings.Join(attrs, ", "))
		if fix.ID != "" {
			fmt.Fprintf(w, " id=%s", fix.ID)
		}
		fmt.Fprintln(w)

		for _, edit := range fix.Edits {
			editStart, _ := fs.Resolve(edit.Span)
			editPath := formatPath(fs, edit.Span.File, opts.PathMode)
			fmt.Fprintf(w, "      at %s:%d:%d apply=%q\n", editPath, editStart.Line, editStart.Col, edit.NewText)

			if opts.ShowPreview {
				printPreview(w, fs, edit)
			}
		}
	}
}

func printPreview(w io.Writer, fs *source.FileSet, edit diag.TextEdit) {
	preview, err := buildFixEditPreview(fs, edit)
	if err != nil {
		return
	}
	fmt.Fprintln(w, "      preview:")
	for _, line := range preview.before {
		fmt.Fprintf(w, "      - %s\n", line)
	}
	for _, line := range preview.after {
		fmt.Fprintf(w, "      + %s\n", line)
	}
}

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	case PathModeAuto:
		return f.FormatPath("auto", "")
	}
	return f.Path
}

func severityText(sev diag.Severity, colored bool) string {
	if !colored {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(sev.String())
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(sev.String())
	default:
		return color.New(color.FgCyan).Sprint(sev.String())
	}
}

// clipLine caps a rendered source line at width display cells.
func clipLine(text string, width uint8) string {
	if width == 0 {
		return text
	}
	return runewidth.Truncate(text, int(width), "…")
}
