package source

import (
	"testing"
)

func TestFileSetAddAndResolve(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("toggle.stc", []byte("class Toggle {\n  open: bool;\n}\n"))
	if id != 0 {
		t.Fatalf("first FileID = %d, want 0", id)
	}

	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Errorf("virtual file missing FileVirtual flag")
	}
	if len(f.LineIdx) != 3 {
		t.Errorf("line index length = %d, want 3", len(f.LineIdx))
	}

	// "open" starts at byte 17 on line 2.
	start, end := fs.Resolve(Span{File: id, Start: 17, End: 21})
	if start.Line != 2 || start.Col != 3 {
		t.Errorf("start = %d:%d, want 2:3", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 7 {
		t.Errorf("end = %d:%d, want 2:7", end.Line, end.Col)
	}
}

func TestFileSetLatestVersionWins(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("button.stc", []byte("class Button {}"), 0)
	id2 := fs.Add("button.stc", []byte("class Button { label: string; }"), 0)
	if id1 == id2 {
		t.Fatalf("re-adding a path must mint a new FileID")
	}

	f, ok := fs.GetByPath("button.stc")
	if !ok {
		t.Fatalf("GetByPath(button.stc) not found")
	}
	if f.ID != id2 {
		t.Errorf("GetByPath returned ID %d, want latest %d", f.ID, id2)
	}
	if string(fs.Get(id1).Content) != "class Button {}" {
		t.Errorf("old version content changed")
	}
}

func TestFileSetHashDiffers(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.stc", []byte("class A {}"))
	b := fs.AddVirtual("b.stc", []byte("class B {}"))
	if fs.Get(a).Hash == fs.Get(b).Hash {
		t.Errorf("distinct content produced identical hashes")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.stc", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestFormatPathBasename(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("src/components/toggle.stc", []byte(""))
	f := fs.Get(id)
	if got := f.FormatPath("basename", ""); got != "toggle.stc" {
		t.Errorf("FormatPath(basename) = %q, want %q", got, "toggle.stc")
	}
}
