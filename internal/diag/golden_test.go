package diag

import (
	"testing"

	"github.com/ysulyma/stencil/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	file := fs.Add("/workspace/src/sample.stc", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: file, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     SemaEventNameReserved,
			Message:  "another",
			Primary:  source.Span{File: file, Start: 2, End: 3},
		},
	}

	expected := "error SYN2001 src/sample.stc:1:1 first line second\n" +
		"note SYN2001 src/sample.stc:2:1 note line\n" +
		"warning SEM3003 src/sample.stc:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatShortDiagnosticsSkipsNotes(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")
	file := fs.Add("/workspace/src/sample.stc", []byte("x\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SemaEventNameCapitalized,
			Message:  "capitalized",
			Primary:  source.Span{File: file, Start: 0, End: 1},
			Notes:    []Note{{Span: source.Span{File: file, Start: 0, End: 1}, Msg: "hidden"}},
		},
	}

	expected := "warning SEM3001 src/sample.stc:1:1 capitalized"
	if got := FormatShortDiagnostics(diags, fs); got != expected {
		t.Fatalf("short output:\nwant: %s\ngot:  %s", expected, got)
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnterminatedString, "LEX1002"},
		{SynExpectSemicolon, "SYN2004"},
		{SemaEventNameReserved, "SEM3003"},
		{IOLoadFileError, "IO4001"},
		{ProjManifestInvalid, "PRJ5002"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("Code(%d).ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
