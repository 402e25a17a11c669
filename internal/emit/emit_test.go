package emit

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ysulyma/stencil/internal/meta"
)

func sampleEvent() meta.EventMeta {
	return meta.EventMeta{
		Method:     "completed",
		Name:       "completed",
		Bubbles:    true,
		Cancelable: true,
		Composed:   true,
		Docs:       meta.DocsSnapshot{Tags: []meta.DocTag{}},
		ComplexType: meta.TypeDescriptor{
			Original:   "any",
			Resolved:   "any",
			References: map[string]meta.TypeReference{},
		},
	}
}

func sampleComponent() meta.ComponentMeta {
	events := []meta.EventMeta{sampleEvent()}
	return meta.ComponentMeta{
		ClassName: "TodoList",
		Tag:       "todo-list",
		Docs:      meta.DocsSnapshot{Tags: []meta.DocTag{}},
		Events:    events,
		StaticMembers: []meta.StaticMember{
			{Name: "events", Value: meta.EventsValue(events)},
		},
	}
}

func TestBuildManifestDropsEmptyFilesAndSorts(t *testing.T) {
	files := []FileArtifact{
		{Path: "src/zebra.stc", Components: []meta.ComponentMeta{sampleComponent()}},
		{Path: "src/empty.stc"},
		{Path: "src/alpha.stc", Components: []meta.ComponentMeta{sampleComponent()}},
	}

	m := BuildManifest("stencil 0.1.0-dev", files)

	if m.Schema != SchemaVersion {
		t.Errorf("schema = %d, want %d", m.Schema, SchemaVersion)
	}
	if m.Generator != "stencil 0.1.0-dev" {
		t.Errorf("generator = %q", m.Generator)
	}
	if len(m.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(m.Files))
	}
	if m.Files[0].Path != "src/alpha.stc" || m.Files[1].Path != "src/zebra.stc" {
		t.Errorf("files not sorted by path: %q, %q", m.Files[0].Path, m.Files[1].Path)
	}
	if m.ComponentCount() != 2 {
		t.Errorf("component count = %d, want 2", m.ComponentCount())
	}
}

func TestManifestJSONRoundTrip(t *testing.T) {
	m := BuildManifest("stencil 0.1.0-dev", []FileArtifact{
		{Path: "src/todo-list.stc", Components: []meta.ComponentMeta{sampleComponent()}},
	})

	var buf bytes.Buffer
	if err := m.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if decoded["schema"] != float64(SchemaVersion) {
		t.Errorf("schema = %v", decoded["schema"])
	}

	files, ok := decoded["files"].([]any)
	if !ok || len(files) != 1 {
		t.Fatalf("files = %v", decoded["files"])
	}
	file := files[0].(map[string]any)
	if file["path"] != "src/todo-list.stc" {
		t.Errorf("path = %v", file["path"])
	}
	comps := file["components"].([]any)
	comp := comps[0].(map[string]any)
	if comp["className"] != "TodoList" || comp["tag"] != "todo-list" {
		t.Errorf("component = %v", comp)
	}
	events := comp["events"].([]any)
	event := events[0].(map[string]any)
	if event["name"] != "completed" || event["bubbles"] != true {
		t.Errorf("event = %v", event)
	}
	complexType := event["complexType"].(map[string]any)
	if complexType["original"] != "any" {
		t.Errorf("complexType = %v", complexType)
	}
}

func TestManifestJSONIsDeterministic(t *testing.T) {
	m := BuildManifest("stencil", []FileArtifact{
		{Path: "b.stc", Components: []meta.ComponentMeta{sampleComponent()}},
		{Path: "a.stc", Components: []meta.ComponentMeta{sampleComponent()}},
	})

	var first, second bytes.Buffer
	if err := m.WriteJSON(&first); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if err := m.WriteJSON(&second); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("two encodings of the same manifest differ")
	}
}

func TestRenderModule(t *testing.T) {
	artifact := FileArtifact{
		Path:       "components/todo-list.stc",
		Components: []meta.ComponentMeta{sampleComponent()},
	}

	got := RenderModule(artifact)
	want := "// compiled from components/todo-list.stc\n" +
		"\n" +
		"class TodoList {\n" +
		`  static events = [{"method":"completed","name":"completed","bubbles":true,"cancelable":true,"composed":true,"docs":{"tags":[],"text":""},"complexType":{"original":"any","resolved":"any","references":{}}}];` + "\n" +
		"}\n" +
		`customElements.define("todo-list", TodoList);` + "\n"
	if got != want {
		t.Fatalf("RenderModule mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderModuleEmptyClass(t *testing.T) {
	artifact := FileArtifact{
		Path: "components/plain.stc",
		Components: []meta.ComponentMeta{{
			ClassName: "Plain",
			Tag:       "plain-box",
		}},
	}

	got := RenderModule(artifact)
	want := "// compiled from components/plain.stc\n" +
		"\n" +
		"class Plain {}\n" +
		`customElements.define("plain-box", Plain);` + "\n"
	if got != want {
		t.Fatalf("RenderModule mismatch:\n got: %q\nwant: %q", got, want)
	}
}
