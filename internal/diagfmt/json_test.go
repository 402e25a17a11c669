package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte(`class Demo {
  label = "unterminated
}`)
	fileID := fs.AddVirtual("test.stc", content)

	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 23, End: 35},
		"Unterminated string literal",
	)
	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		Max:              0,
		IncludeNotes:     true,
		IncludeFixes:     true,
	}

	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}

	if output.Count != 1 {
		t.Errorf("Expected count=1, got %d", output.Count)
	}
	if len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", len(output.Diagnostics))
	}

	got := output.Diagnostics[0]
	if got.Severity != "ERROR" {
		t.Errorf("Expected severity=ERROR, got %s", got.Severity)
	}
	if got.Code != "LEX1002" {
		t.Errorf("Expected code=LEX1002, got %s", got.Code)
	}
	if got.Message != "Unterminated string literal" {
		t.Errorf("Expected message='Unterminated string literal', got %s", got.Message)
	}
	if got.Location.File != "test.stc" {
		t.Errorf("Expected file=test.stc, got %s", got.Location.File)
	}
	if got.Location.StartByte != 23 {
		t.Errorf("Expected start_byte=23, got %d", got.Location.StartByte)
	}
	if got.Location.EndByte != 35 {
		t.Errorf("Expected end_byte=35, got %d", got.Location.EndByte)
	}
	if got.Location.StartLine != 2 {
		t.Errorf("Expected start_line=2, got %d", got.Location.StartLine)
	}
	if got.Location.StartCol != 11 {
		t.Errorf("Expected start_col=11, got %d", got.Location.StartCol)
	}
}

func TestJSONWithNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte(`let x = 42`)
	fileID := fs.AddVirtual("test.stc", content)

	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevWarning,
		diag.LexUnknownChar,
		source.Span{File: fileID, Start: 4, End: 5},
		"Unused variable",
	)
	d = d.WithNote(
		source.Span{File: fileID, Start: 4, End: 5},
		"Consider removing this variable or prefixing with underscore",
	)
	d = d.WithFix(
		"Remove unused variable",
		diag.TextEdit{
			Span:    source.Span{File: fileID, Start: 0, End: 10},
			NewText: "",
		},
	)

	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		Max:              0,
		IncludeNotes:     true,
		IncludeFixes:     true,
	}

	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}

	if len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", len(output.Diagnostics))
	}

	got := output.Diagnostics[0]

	if len(got.Notes) != 1 {
		t.Fatalf("Expected 1 note, got %d", len(got.Notes))
	}
	note := got.Notes[0]
	if note.Message != "Consider removing this variable or prefixing with underscore" {
		t.Errorf("Unexpected note message: %s", note.Message)
	}

	if len(got.Fixes) != 1 {
		t.Fatalf("Expected 1 fix, got %d", len(got.Fixes))
	}
	fixJSON := got.Fixes[0]
	if fixJSON.Title != "Remove unused variable" {
		t.Errorf("Unexpected fix title: %s", fixJSON.Title)
	}
	if len(fixJSON.Edits) != 1 {
		t.Fatalf("Expected 1 edit, got %d", len(fixJSON.Edits))
	}
	edit := fixJSON.Edits[0]
	if edit.NewText != "" {
		t.Errorf("Expected empty new_text, got %s", edit.NewText)
	}
	if edit.OldText != "" {
		t.Errorf("Expected old_text to be empty, got %s", edit.OldText)
	}
	if fixJSON.Kind != "quickfix" {
		t.Errorf("Expected kind quickfix, got %s", fixJSON.Kind)
	}
	if fixJSON.Applicability != "always-safe" {
		t.Errorf("Expected applicability always-safe, got %s", fixJSON.Applicability)
	}
	if fixJSON.IsPreferred {
		t.Errorf("Expected is_preferred to be false")
	}
}

func TestJSONFixOrdering(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.stc", []byte("class Demo {}"))

	span := source.Span{File: fileID, Start: 6, End: 10}
	d := diag.New(diag.SevWarning, diag.SynUnexpectedToken, span, "suspicious name")
	d = d.WithFixSuggestion(diag.Fix{
		Title:         "manual rename",
		Kind:          diag.FixRefactor,
		Applicability: diag.ApplicabilityManualReview,
		Edits:         []diag.TextEdit{{Span: span, NewText: "Renamed"}},
	})
	d = d.WithFixSuggestion(diag.Fix{
		Title:         "apply suggested name",
		Kind:          diag.FixQuickFix,
		Applicability: diag.ApplicabilityAlwaysSafe,
		IsPreferred:   true,
		Edits:         []diag.TextEdit{{Span: span, NewText: "demo"}},
	})

	bag := diag.NewBag(4)
	bag.Add(d)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{PathMode: PathModeBasename, IncludeFixes: true}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}

	fixes := output.Diagnostics[0].Fixes
	if len(fixes) != 2 {
		t.Fatalf("Expected 2 fixes, got %d", len(fixes))
	}
	if fixes[0].Title != "apply suggested name" || !fixes[0].IsPreferred {
		t.Errorf("preferred fix not listed first: %+v", fixes[0])
	}
	if fixes[1].Title != "manual rename" {
		t.Errorf("unexpected second fix: %+v", fixes[1])
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x = 42")
	fileID := fs.AddVirtual("test.stc", content)

	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevInfo,
		diag.LexUnknownChar,
		source.Span{File: fileID, Start: 4, End: 5},
		"Info message",
	)
	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: false,
		PathMode:         PathModeBasename,
		Max:              0,
	}

	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}

	got := output.Diagnostics[0]

	// omitempty hides line/col when positions are not requested
	if got.Location.StartLine != 0 {
		t.Errorf("Expected start_line to be omitted (0), got %d", got.Location.StartLine)
	}

	// byte offsets are always present
	if got.Location.StartByte != 4 {
		t.Errorf("Expected start_byte=4, got %d", got.Location.StartByte)
	}
}

func TestJSONMaxLimit(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("test content")
	fileID := fs.AddVirtual("test.stc", content)

	bag := diag.NewBag(10)

	for i := 0; i < 5; i++ {
		d := diag.New(
			diag.SevError,
			diag.LexUnknownChar,
			source.Span{File: fileID, Start: uint32(i), End: uint32(i + 1)},
			"Error message",
		)
		bag.Add(d)
	}

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: false,
		PathMode:         PathModeBasename,
		Max:              3,
	}

	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}

	if output.Count != 3 {
		t.Errorf("Expected count=3 (limited), got %d", output.Count)
	}
	if len(output.Diagnostics) != 3 {
		t.Errorf("Expected 3 diagnostics (limited), got %d", len(output.Diagnostics))
	}
}

func TestJSONPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/home/user/project")

	content := []byte("test")
	fileID := fs.AddVirtual("/home/user/project/src/main.stc", content)

	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevError,
		diag.LexUnknownChar,
		source.Span{File: fileID, Start: 0, End: 1},
		"Error",
	)
	bag.Add(d)

	tests := []struct {
		name     string
		pathMode PathMode
		expected string
	}{
		{"Absolute", PathModeAbsolute, "/home/user/project/src/main.stc"},
		{"Relative", PathModeRelative, "src/main.stc"},
		{"Basename", PathModeBasename, "main.stc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := JSONOpts{
				IncludePositions: false,
				PathMode:         tt.pathMode,
				Max:              0,
			}

			if err := JSON(&buf, bag, fs, opts); err != nil {
				t.Fatalf("JSON() error: %v", err)
			}

			var output DiagnosticsOutput
			if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
				t.Fatalf("Invalid JSON output: %v", err)
			}

			if output.Diagnostics[0].Location.File != tt.expected {
				t.Errorf("Expected file=%s, got %s", tt.expected, output.Diagnostics[0].Location.File)
			}
		})
	}
}

func TestJSONFixPreview(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let a = 42 // missing semicolon")
	fileID := fs.AddVirtual("example.stc", content)

	bag := diag.NewBag(2)
	insertSpan := source.Span{File: fileID, Start: 10, End: 10}
	d := diag.New(diag.SevWarning, diag.LexUnknownChar, insertSpan, "missing semicolon")
	d = d.WithFix("insert semicolon", diag.TextEdit{
		Span:    insertSpan,
		NewText: ";",
	})
	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeFixes:     true,
		IncludePreviews:  true,
	}

	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}

	if len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d", len(output.Diagnostics))
	}

	diagJSON := output.Diagnostics[0]
	if len(diagJSON.Fixes) != 1 {
		t.Fatalf("Expected 1 fix, got %d", len(diagJSON.Fixes))
	}

	fixJSON := diagJSON.Fixes[0]
	if len(fixJSON.Edits) != 1 {
		t.Fatalf("Expected 1 edit, got %d", len(fixJSON.Edits))
	}

	editJSON := fixJSON.Edits[0]
	if len(editJSON.BeforeLines) != 1 {
		t.Fatalf("Expected 1 before line, got %d", len(editJSON.BeforeLines))
	}
	if editJSON.BeforeLines[0] != "let a = 42 // missing semicolon" {
		t.Errorf("Unexpected before line: %q", editJSON.BeforeLines[0])
	}

	if len(editJSON.AfterLines) != 1 {
		t.Fatalf("Expected 1 after line, got %d", len(editJSON.AfterLines))
	}
	if editJSON.AfterLines[0] != "let a = 42; // missing semicolon" {
		t.Errorf("Unexpected after line: %q", editJSON.AfterLines[0])
	}
}
