package parser

import (
	"testing"

	"github.com/ysulyma/stencil/internal/diag"
)

func TestParseImportSingle(t *testing.T) {
	res, arenas, bag := parseSource(`import { Todo } from "./types";`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	file := arenas.Files.Get(res.File)
	if len(file.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(file.Decls))
	}
	imp, ok := arenas.Decls.Import(file.Decls[0])
	if !ok {
		t.Fatalf("expected an import decl")
	}
	if len(imp.Names) != 1 || arenas.MustLookup(imp.Names[0].Name) != "Todo" {
		t.Fatalf("expected single name Todo")
	}
	if arenas.MustLookup(imp.From) != "./types" {
		t.Fatalf("module path mismatch")
	}
}

func TestParseImportMultiple(t *testing.T) {
	res, arenas, bag := parseSource(`import { A, B, C, } from "pkg/util";`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	file := arenas.Files.Get(res.File)
	imp, ok := arenas.Decls.Import(file.Decls[0])
	if !ok {
		t.Fatalf("expected an import decl")
	}
	if len(imp.Names) != 3 {
		t.Fatalf("expected 3 names despite trailing comma, got %d", len(imp.Names))
	}
	for i, want := range []string{"A", "B", "C"} {
		if got := arenas.MustLookup(imp.Names[i].Name); got != want {
			t.Fatalf("name %d = %q, want %q", i, got, want)
		}
	}
}

func TestParseImportSingleQuotes(t *testing.T) {
	res, arenas, bag := parseSource(`import { Store } from './store';`)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	file := arenas.Files.Get(res.File)
	imp, _ := arenas.Decls.Import(file.Decls[0])
	if arenas.MustLookup(imp.From) != "./store" {
		t.Fatalf("single-quoted module path should decode the same")
	}
}

func TestParseImportErrors(t *testing.T) {
	cases := []struct {
		input string
		code  diag.Code
	}{
		{`import Todo from "./types";`, diag.SynUnexpectedToken},
		{`import { Todo from "./types";`, diag.SynUnclosedBrace},
		{`import { Todo } "./types";`, diag.SynExpectFrom},
		{`import { Todo } from;`, diag.SynExpectString},
		{`import { Todo } from "./types"`, diag.SynExpectSemicolon},
		{`import { 42 } from "./types";`, diag.SynExpectIdentifier},
	}
	for _, tc := range cases {
		_, _, bag := parseSource(tc.input)
		found := false
		for _, d := range bag.Items() {
			if d.Code == tc.code {
				found = true
			}
		}
		if !found {
			t.Fatalf("%q: expected %s, got: %s", tc.input, tc.code.ID(), diagnosticsSummary(bag))
		}
	}
}

func TestParseImportEmptyClause(t *testing.T) {
	res, arenas, bag := parseSource(`import { } from "./side-effect";`)
	if bag.HasErrors() {
		t.Fatalf("empty import clause should parse, got: %s", diagnosticsSummary(bag))
	}
	file := arenas.Files.Get(res.File)
	imp, ok := arenas.Decls.Import(file.Decls[0])
	if !ok {
		t.Fatalf("expected an import decl")
	}
	if len(imp.Names) != 0 {
		t.Fatalf("expected no names, got %d", len(imp.Names))
	}
}

func TestParseMultipleImports(t *testing.T) {
	src := `import { A } from "a";
import { B } from "b";
`
	res, arenas, bag := parseSource(src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	file := arenas.Files.Get(res.File)
	if len(file.Decls) != 2 {
		t.Fatalf("expected 2 imports, got %d", len(file.Decls))
	}
}
